package assetstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutAndDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "brands", Upload{
		Name:        "logo.png",
		ContentType: "image/png",
		Data:        pngBytes,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "brands/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.NotContains(t, ref, "\\")

	onDisk, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, onDisk)

	require.NoError(t, store.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(store.Root(), filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreRefsAreCollisionResistant(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	up := Upload{Name: "same.jpg", ContentType: "image/jpeg", Data: jpegBytes}
	a, err := store.Put(context.Background(), "cars", up)
	require.NoError(t, err)
	b, err := store.Put(context.Background(), "cars", up)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestLocalStoreDeleteMissingIsNotAnError(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "cars/never-stored.jpg"))
}

func TestLocalStoreDeleteRefusesEscapingRefs(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, store.Delete(context.Background(), "../outside.jpg"))
	assert.Error(t, store.Delete(context.Background(), "cars/../../outside.jpg"))
}

func TestNewLocalStoreIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	_, err := NewLocalStore(dir)
	require.NoError(t, err)
	_, err = NewLocalStore(dir)
	require.NoError(t, err)
}
