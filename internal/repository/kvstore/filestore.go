package kvstore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileKV persists each collection as one JSON file under a data directory.
// Writes go through a temp file + rename so a crash mid-write leaves the
// previous snapshot intact.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create data dir %s", dir)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "read %s", f.path(key))
	}
	return b, true, nil
}

func (f *FileKV) Put(key string, val []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, val, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
