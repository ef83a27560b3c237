package repository

import (
	"cardshop/internal/models"
)

// Collection names shared by every backend.
const (
	CollectionOrders = "orders"
	CollectionFiles  = "files"
)

// Store is the persistence boundary of the shop: two flat collections with
// read-all/replace-all semantics. There are no partial updates — callers
// load a collection, mutate it in memory and write the whole thing back.
// Load methods degrade to an empty collection when the backing data is
// missing or corrupt; they only error on backend failures worth surfacing.
type Store interface {
	LoadOrders() ([]models.Order, error)
	ReplaceOrders(orders []models.Order) error
	LoadFiles() ([]models.File, error)
	ReplaceFiles(files []models.File) error
}
