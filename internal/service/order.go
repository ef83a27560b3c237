package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"cardshop/internal/models"
)

const orderNoAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderNo builds the human-facing code: ORD + base36 unix millis +
// 4 random base36 chars, uppercased. Distinguishable in practice, but
// uniqueness is not enforced.
func generateOrderNo(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderNoAlphabet[rand.Intn(len(orderNoAlphabet))]
	}
	return "ORD" + ts + string(suffix)
}

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

// CreateOrder validates buyer input and appends a pending order. Nothing is
// persisted when validation fails.
func (s *Service) CreateOrder(in models.OrderInput) (models.Order, error) {
	in.Contact = strings.TrimSpace(in.Contact)
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.Remark = strings.TrimSpace(in.Remark)

	if err := s.v.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return models.Order{}, fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
		}
		return models.Order{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	order := models.Order{
		ID:        s.newID(),
		OrderNo:   generateOrderNo(now),
		Contact:   in.Contact,
		PaymentID: in.PaymentID,
		Remark:    in.Remark,
		Status:    models.StatusPending,
		CreatedAt: now,
	}

	orders, err := s.store.LoadOrders()
	if err != nil {
		return models.Order{}, err
	}
	// Newest first, the display convention of the admin table.
	orders = append([]models.Order{order}, orders...)
	if err := s.store.ReplaceOrders(orders); err != nil {
		return models.Order{}, err
	}

	s.publish(OrderEvent{
		Type:       EventOrderCreated,
		OrderID:    order.ID,
		OrderNo:    order.OrderNo,
		Status:     order.Status,
		OccurredAt: now,
	})
	return order, nil
}

// FindByOrderNo is a case-sensitive exact match across all orders.
func (s *Service) FindByOrderNo(orderNo string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.store.LoadOrders()
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// ListOrders returns all orders, optionally filtered by status.
func (s *Service) ListOrders(status string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}
	if status == "" || status == "all" {
		return orders, nil
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Deliver binds one unsold file to a pending order and marks both. The
// steps are ordered so a crash after the file write leaves a sold file with
// a pending order — never a double allocation. Delivering an already
// delivered order is rejected and consumes nothing.
func (s *Service) Deliver(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.store.LoadOrders()
	if err != nil {
		return models.Order{}, err
	}
	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Order{}, ErrNotFound
	}
	if orders[idx].Delivered() {
		return models.Order{}, ErrAlreadyDelivered
	}

	file, ok, err := s.pickAvailable()
	if err != nil {
		return models.Order{}, err
	}
	if !ok {
		return models.Order{}, ErrOutOfStock
	}

	allocated, err := s.allocate(file.ID, orderID)
	if err != nil {
		return models.Order{}, err
	}

	now := s.now()
	orders[idx].Status = models.StatusDelivered
	orders[idx].FileID = &allocated.ID
	orders[idx].FileContent = &allocated.Content
	orders[idx].DeliveredAt = &now
	if err := s.store.ReplaceOrders(orders); err != nil {
		return models.Order{}, err
	}

	s.publish(OrderEvent{
		Type:       EventOrderDelivered,
		OrderID:    orders[idx].ID,
		OrderNo:    orders[idx].OrderNo,
		Status:     orders[idx].Status,
		OccurredAt: now,
	})
	return orders[idx], nil
}

// Stats aggregates order counts, remaining stock and revenue. Revenue is
// delivered count times the configured unit price, priced at read time.
func (s *Service) Stats() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.store.LoadOrders()
	if err != nil {
		return Stats{}, err
	}
	files, err := s.store.LoadFiles()
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, o := range orders {
		if o.Delivered() {
			st.Delivered++
		} else {
			st.Pending++
		}
	}
	for _, f := range files {
		if !f.IsSold {
			st.Stock++
		}
	}
	st.Revenue = int64(st.Delivered) * s.unitPrice
	return st, nil
}

func (s *Service) publish(ev OrderEvent) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(context.Background(), ev); err != nil {
		logrus.WithError(err).WithField("order_no", ev.OrderNo).Warn("event publish failed")
	}
}
