package models

import (
	"time"
)

// File is one deliverable unit of stock: an opaque credential string sold
// exactly once. Sold files keep the id of the order they were bound to.
type File struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsSold    bool      `json:"is_sold"`
	OrderID   *string   `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}
