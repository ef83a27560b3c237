package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cardshop/internal/models"
	"cardshop/internal/repository/kvstore"
)

func TestFileKV_PutGet(t *testing.T) {
	dir := t.TempDir()
	kv, err := kvstore.NewFileKV(dir)
	require.NoError(t, err)

	_, ok, err := kv.Get("orders")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Put("orders", []byte(`[{"id":"o1"}]`)))

	b, ok, err := kv.Get("orders")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, string(b), `"o1"`)

	// one json file per collection, no stray temp files
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "orders.json", entries[0].Name())
}

func TestFileKV_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	kv, err := kvstore.NewFileKV(dir)
	require.NoError(t, err)
	s := kvstore.NewCollectionStore(kv)
	require.NoError(t, s.ReplaceFiles([]models.File{{ID: "f1", Content: "secret"}}))

	kv2, err := kvstore.NewFileKV(dir)
	require.NoError(t, err)
	s2 := kvstore.NewCollectionStore(kv2)

	files, err := s2.LoadFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "secret", files[0].Content)
}

func TestFileKV_CorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte("{broken"), 0o644))

	kv, err := kvstore.NewFileKV(dir)
	require.NoError(t, err)
	s := kvstore.NewCollectionStore(kv)

	orders, err := s.LoadOrders()
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestFileKV_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := kvstore.NewFileKV(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
