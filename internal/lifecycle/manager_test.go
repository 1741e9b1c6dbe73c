package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autohub/internal/assetstore"
)

func upload(name string) assetstore.Upload {
	return assetstore.Upload{Name: name, ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}
}

func TestAttachStoresAllUploads(t *testing.T) {
	store := assetstore.NewMemoryStore()
	m := New(store, zap.NewNop())

	refs, err := m.Attach(context.Background(), "cars", []assetstore.Upload{
		upload("a.jpg"), upload("b.jpg"), upload("c.jpg"),
	})
	require.NoError(t, err)
	require.Len(t, refs, 3)
	for _, ref := range refs {
		assert.True(t, store.Exists(ref))
	}
}

func TestAttachFailureCleansUpPartialBatch(t *testing.T) {
	store := assetstore.NewMemoryStore()
	m := New(store, zap.NewNop())

	// First put succeeds, then the store starts failing.
	first, err := m.Attach(context.Background(), "cars", []assetstore.Upload{upload("a.jpg")})
	require.NoError(t, err)
	require.Len(t, first, 1)

	store.FailPut = true
	_, err = m.Attach(context.Background(), "cars", []assetstore.Upload{upload("b.jpg")})
	require.Error(t, err)

	// Only the successful standalone batch remains.
	assert.Equal(t, 1, store.Len())
}

func TestCleanupIsBestEffort(t *testing.T) {
	store := assetstore.NewMemoryStore()
	store.Seed("cars/a.jpg", "cars/b.jpg", "cars/c.jpg")
	store.FailDelete["cars/b.jpg"] = true

	m := New(store, zap.NewNop())
	m.Cleanup(context.Background(), "cars/a.jpg", "cars/b.jpg", "", "cars/c.jpg", "cars/ghost.jpg")

	// a and c deleted, b survived its failed delete, nothing panicked on the
	// empty or unknown refs.
	assert.False(t, store.Exists("cars/a.jpg"))
	assert.True(t, store.Exists("cars/b.jpg"))
	assert.False(t, store.Exists("cars/c.jpg"))
}

func TestReconcilePhotosRetainAndAppend(t *testing.T) {
	final, toDelete := ReconcilePhotos(
		[]string{"A", "B", "C"},
		[]string{"A", "C"},
		[]string{"D"},
	)
	assert.Equal(t, []string{"A", "C", "D"}, final)
	assert.Equal(t, []string{"B"}, toDelete)
}

func TestReconcilePhotosRetainNothing(t *testing.T) {
	final, toDelete := ReconcilePhotos([]string{"A", "B"}, nil, []string{"X", "Y"})
	assert.Equal(t, []string{"X", "Y"}, final)
	assert.ElementsMatch(t, []string{"A", "B"}, toDelete)
}

func TestReconcilePhotosIgnoresUnknownRetained(t *testing.T) {
	final, toDelete := ReconcilePhotos(
		[]string{"A", "B"},
		[]string{"A", "Z", "A"}, // Z was never stored, A repeated
		nil,
	)
	assert.Equal(t, []string{"A"}, final)
	assert.Equal(t, []string{"B"}, toDelete)
}

func TestReconcilePhotosPreservesRetainedOrder(t *testing.T) {
	final, toDelete := ReconcilePhotos(
		[]string{"A", "B", "C", "D"},
		[]string{"D", "B"},
		[]string{"E"},
	)
	assert.Equal(t, []string{"D", "B", "E"}, final)
	assert.ElementsMatch(t, []string{"A", "C"}, toDelete)
}
