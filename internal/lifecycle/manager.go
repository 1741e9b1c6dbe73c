// Package lifecycle keeps entity records and the asset store consistent
// across create, update and delete. The one ordering rule: entity records are
// written with new references before old assets are removed, so a failure
// mid-flow leaks an orphaned asset but never leaves a dangling reference.
package lifecycle

import (
	"context"

	"go.uber.org/zap"

	"autohub/internal/assetstore"
)

type Manager struct {
	store assetstore.Store
	log   *zap.Logger
}

func New(store assetstore.Store, log *zap.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Attach stores a batch of validated uploads and returns their references in
// order. Put failures are fatal: the first one aborts the batch, any
// references already written are cleaned up best-effort, and the error
// propagates so the enclosing entity write never happens.
func (m *Manager) Attach(ctx context.Context, folder string, uploads []assetstore.Upload) ([]string, error) {
	refs := make([]string, 0, len(uploads))
	for _, up := range uploads {
		ref, err := m.store.Put(ctx, folder, up)
		if err != nil {
			m.Cleanup(ctx, refs...)
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Cleanup deletes references best-effort. Failures are logged and swallowed:
// an asset leak is preferred over blocking a user-facing mutation on storage
// flakiness.
func (m *Manager) Cleanup(ctx context.Context, refs ...string) {
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if err := m.store.Delete(ctx, ref); err != nil {
			m.log.Warn("asset cleanup failed, reference leaked",
				zap.String("ref", ref),
				zap.Error(err),
			)
		}
	}
}

// ReconcilePhotos computes the outcome of a partial photo replacement. The
// caller supplies the current stored list, the subset it wants to retain and
// the references of freshly attached uploads. The final list preserves
// retained order and appends the new uploads; toDelete is every current
// reference not retained. Retained entries unknown to the current list are
// dropped rather than trusted.
func ReconcilePhotos(current, retained, uploaded []string) (final, toDelete []string) {
	known := make(map[string]bool, len(current))
	for _, ref := range current {
		known[ref] = true
	}

	kept := make(map[string]bool, len(retained))
	final = make([]string, 0, len(retained)+len(uploaded))
	for _, ref := range retained {
		if known[ref] && !kept[ref] {
			kept[ref] = true
			final = append(final, ref)
		}
	}

	for _, ref := range current {
		if !kept[ref] {
			toDelete = append(toDelete, ref)
		}
	}

	final = append(final, uploaded...)
	return final, toDelete
}
