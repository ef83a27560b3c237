package models

import (
	"time"
)

const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
)

// Order is one buyer request for a single unit of stock. The JSON field
// names are the persisted record shape, shared by every store backend.
type Order struct {
	ID          string     `json:"id"`
	OrderNo     string     `json:"order_no"`
	Contact     string     `json:"contact"`
	PaymentID   string     `json:"payment_id"`
	Remark      string     `json:"remark"`
	Status      string     `json:"status"`
	FileID      *string    `json:"file_id"`
	FileContent *string    `json:"file_content"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

func (o Order) Delivered() bool { return o.Status == StatusDelivered }

// OrderInput is the buyer-supplied part of an order. PaymentID is the last
// 4 characters of the payment transaction reference.
type OrderInput struct {
	Contact   string `json:"contact"    validate:"required"`
	PaymentID string `json:"payment_id" validate:"required,len=4"`
	Remark    string `json:"remark"`
}
