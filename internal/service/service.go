package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"cardshop/internal/models"
	"cardshop/internal/repository"
)

// Shop is the surface the delivery layer talks to: the order fulfillment
// workflow plus the inventory allocator.
type Shop interface {
	CreateOrder(in models.OrderInput) (models.Order, error)
	FindByOrderNo(orderNo string) (models.Order, error)
	ListOrders(status string) ([]models.Order, error)
	Deliver(orderID string) (models.Order, error)

	PickAvailable() (models.File, bool, error)
	Allocate(fileID, orderID string) (models.File, error)
	BulkAdd(lines []string) ([]models.File, error)
	ListFiles() ([]models.File, error)

	Stats() (Stats, error)
}

// OrderEvent is a lifecycle notification emitted after a successful
// mutation. Publishing is best-effort; the mutation never rolls back on
// broker trouble.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	OrderNo    string    `json:"order_no"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventOrderCreated   = "order.created"
	EventOrderDelivered = "order.delivered"
)

type EventPublisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}

type Stats struct {
	Pending   int   `json:"pending"`
	Delivered int   `json:"delivered"`
	Stock     int   `json:"stock"`
	Revenue   int64 `json:"revenue"`
}

type Service struct {
	store repository.Store
	pub   EventPublisher
	v     *validator.Validate

	unitPrice int64
	now       func() time.Time
	newID     func() string

	// Serializes mutations within this process. The read-all/replace-all
	// store contract is not safe under overlapping writers, so every
	// public operation runs to completion before the next one starts.
	mu sync.Mutex
}

type Option func(*Service)

func WithUnitPrice(price int64) Option { return func(s *Service) { s.unitPrice = price } }

func WithPublisher(pub EventPublisher) Option { return func(s *Service) { s.pub = pub } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithIDFunc(f func() string) Option { return func(s *Service) { s.newID = f } }

func NewService(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		v:     validator.New(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
