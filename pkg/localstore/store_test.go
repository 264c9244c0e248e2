package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	saved := NewSavedItems(store)
	item, err := saved.Save(KindNotes, "user-1", "Harvest", "Paddy ready in 2 weeks")
	require.NoError(t, err)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	items := NewSavedItems(reopened).List(KindNotes, "user-1")
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "Harvest", items[0].Title)
}

func TestFileStoreStartsEmptyOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Get("savedNotes_user-1")
	assert.False(t, ok)
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", []byte(`"value"`)))
	require.NoError(t, store.Delete("key"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok := reopened.Get("key")
	assert.False(t, ok)
}
