package assetstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore persists images under a root directory on local disk. References
// are slash-normalized paths relative to the root, e.g. "cars/1699...-ab12.jpg".
type LocalStore struct {
	root string
}

// NewLocalStore resolves and creates the upload root. Creation is idempotent;
// the caller invokes this once at process start instead of relying on ambient
// filesystem side effects later.
func NewLocalStore(root string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: abs}, nil
}

// Root returns the absolute upload directory, for static file mounting.
func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) Put(_ context.Context, folder string, up Upload) (string, error) {
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create folder %s: %w", folder, err)
	}

	// Timestamp prefix plus a random component keeps names collision-free
	// even for same-millisecond uploads of one file.
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], extForMime(up.ContentType))
	if err := os.WriteFile(filepath.Join(dir, name), up.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s/%s: %w", folder, name, err)
	}

	return folder + "/" + name, nil
}

func (s *LocalStore) Delete(_ context.Context, ref string) error {
	rel := filepath.Clean(strings.TrimPrefix(ref, "/"))
	if rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("refusing to delete %q: outside upload root", ref)
	}
	if err := os.Remove(filepath.Join(s.root, rel)); err != nil {
		if os.IsNotExist(err) {
			// Already gone counts as deleted; absence is a data-integrity
			// warning for the caller to log, not a failure.
			return nil
		}
		return fmt.Errorf("delete %s: %w", ref, err)
	}
	return nil
}
