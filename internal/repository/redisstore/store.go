package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	rd "github.com/redis/go-redis/v9"
)

const opTimeout = 3 * time.Second

// collectionKey namespaces collection snapshots in a shared redis.
func collectionKey(name string) string {
	return fmt.Sprintf("cardshop:collection:%s", name)
}

// KV keeps each collection as one JSON value in redis. Snapshots never
// expire; the shop owns the keys for its lifetime.
type KV struct {
	rdb *rd.Client
}

func New(rdb *rd.Client) *KV {
	return &KV{rdb: rdb}
}

func Connect(addr string, db int) (*rd.Client, error) {
	rdb := rd.NewClient(&rd.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, "redis ping %s", addr)
	}
	return rdb, nil
}

func (k *KV) Get(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	b, err := k.rdb.Get(ctx, collectionKey(key)).Bytes()
	if errors.Is(err, rd.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "redis get %s", key)
	}
	return b, true, nil
}

func (k *KV) Put(key string, val []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := k.rdb.Set(ctx, collectionKey(key), val, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}
	return nil
}
