package kvstore

import (
	"sync"
)

// KV is a byte-level key-value backend holding one serialized collection
// per key. Get returns ok=false when the key has never been written.
type KV interface {
	Get(key string) (val []byte, ok bool, err error)
	Put(key string, val []byte) error
}

// Memory is an in-process KV. Handy default for tests and single-run demos;
// contents vanish with the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Put(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(val))
	copy(cp, val)
	m.data[key] = cp
	return nil
}
