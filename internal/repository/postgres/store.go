package postgres

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// Collection is one persisted collection snapshot: the whole orders or
// files sequence as a single JSON payload, keyed by collection name.
type Collection struct {
	Name      string `gorm:"primary_key;type:varchar(64)"`
	Payload   []byte `gorm:"type:bytea"`
	UpdatedAt time.Time
}

// KV implements the byte key-value contract over a collections table, so a
// real database is a drop-in replacement for the file/redis backends.
type KV struct {
	db *gorm.DB
}

func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Collection{}).Error
}

func (k *KV) Get(key string) ([]byte, bool, error) {
	var c Collection
	err := k.db.Where("name = ?", key).First(&c).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "load collection %s", key)
	}
	return c.Payload, true, nil
}

func (k *KV) Put(key string, val []byte) error {
	return k.db.Transaction(func(tx *gorm.DB) error {
		var count int
		if err := tx.Model(&Collection{}).Where("name = ?", key).Count(&count).Error; err != nil {
			return errors.Wrapf(err, "count collection %s", key)
		}
		if count == 0 {
			return errors.Wrapf(tx.Create(&Collection{Name: key, Payload: val}).Error,
				"create collection %s", key)
		}
		return errors.Wrapf(tx.Model(&Collection{}).Where("name = ?", key).
			Update("payload", val).Error, "update collection %s", key)
	})
}
