package kvstore

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"cardshop/internal/models"
	"cardshop/internal/repository"
)

// CollectionStore adapts any KV backend to the Store contract by JSON
// encoding whole collections under fixed keys. Unreadable or corrupt data
// loads as the empty collection instead of failing — absence is just empty
// state for this shop.
type CollectionStore struct {
	kv KV
}

func NewCollectionStore(kv KV) *CollectionStore {
	return &CollectionStore{kv: kv}
}

var _ repository.Store = (*CollectionStore)(nil)

func (s *CollectionStore) LoadOrders() ([]models.Order, error) {
	var orders []models.Order
	s.load(repository.CollectionOrders, &orders)
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *CollectionStore) ReplaceOrders(orders []models.Order) error {
	return s.replace(repository.CollectionOrders, orders)
}

func (s *CollectionStore) LoadFiles() ([]models.File, error) {
	var files []models.File
	s.load(repository.CollectionFiles, &files)
	if files == nil {
		files = []models.File{}
	}
	return files, nil
}

func (s *CollectionStore) ReplaceFiles(files []models.File) error {
	return s.replace(repository.CollectionFiles, files)
}

func (s *CollectionStore) load(key string, out any) {
	b, ok, err := s.kv.Get(key)
	if err != nil {
		logrus.WithError(err).WithField("collection", key).Warn("load failed, treating as empty")
		return
	}
	if !ok || len(b) == 0 {
		return
	}
	if err := json.Unmarshal(b, out); err != nil {
		logrus.WithError(err).WithField("collection", key).Warn("corrupt collection, treating as empty")
	}
}

func (s *CollectionStore) replace(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode collection %s", key)
	}
	if err := s.kv.Put(key, b); err != nil {
		return errors.Wrapf(err, "persist collection %s", key)
	}
	return nil
}
