package brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autohub/internal/assetstore"
	"autohub/internal/domain"
	"autohub/internal/lifecycle"
	"autohub/internal/repository"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, b *domain.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, onlyActive bool) ([]domain.Brand, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id string, upd repository.BrandUpdate) (*domain.Brand, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newService(repo Repository, store assetstore.Store) *Service {
	return NewService(repo, lifecycle.New(store, zap.NewNop()))
}

func logoUpload() *assetstore.Upload {
	return &assetstore.Upload{Name: "logo.png", ContentType: "image/png", Data: []byte{0x89, 0x50}}
}

func TestCreateRequiresLogo(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	_, err := svc.Create(context.Background(), CreateBrandRequest{Name: "Toyota"}, nil)
	assert.ErrorIs(t, err, ErrLogoRequired)

	// Nothing stored, nothing written.
	assert.Equal(t, 0, store.Len())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateStoresLogoAndRecord(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Brand")).Return(nil)

	b, err := svc.Create(context.Background(), CreateBrandRequest{Name: "Toyota", IsActive: true}, logoUpload())
	require.NoError(t, err)
	assert.Equal(t, "Toyota", b.Name)
	assert.True(t, store.Exists(b.Logo))
	repo.AssertExpectations(t)
}

func TestCreateDuplicateNameRollsBackLogo(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	// The unique index rejects "TOYOTA" after "Toyota" regardless of case.
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)

	_, err := svc.Create(context.Background(), CreateBrandRequest{Name: "TOYOTA"}, logoUpload())
	assert.ErrorIs(t, err, ErrNameTaken)
	assert.Equal(t, 0, store.Len(), "rejected create must not leak its logo")
}

func TestUpdateWithNewLogoDeletesOldOne(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("brands/old.png")
	svc := newService(repo, store)

	current := &domain.Brand{Name: "Toyota", Logo: "brands/old.png"}
	repo.On("GetByID", mock.Anything, "id1").Return(current, nil)
	repo.On("Update", mock.Anything, "id1", mock.MatchedBy(func(upd repository.BrandUpdate) bool {
		return upd.Logo != nil && *upd.Logo != "brands/old.png"
	})).Return(&domain.Brand{Name: "Toyota", Logo: "brands/1.png"}, nil)

	updated, err := svc.Update(context.Background(), "id1", UpdateBrandRequest{}, logoUpload())
	require.NoError(t, err)

	assert.False(t, store.Exists("brands/old.png"), "replaced logo must be purged")
	assert.True(t, store.Exists(updated.Logo))
	assert.Equal(t, 1, store.Len(), "exactly one live reference after replacement")
}

func TestUpdateWithoutLogoLeavesAssetAlone(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("brands/old.png")
	svc := newService(repo, store)

	name := "Renamed"
	repo.On("GetByID", mock.Anything, "id1").Return(&domain.Brand{Logo: "brands/old.png"}, nil)
	repo.On("Update", mock.Anything, "id1", repository.BrandUpdate{Name: &name}).
		Return(&domain.Brand{Name: name, Logo: "brands/old.png"}, nil)

	_, err := svc.Update(context.Background(), "id1", UpdateBrandRequest{Name: &name}, nil)
	require.NoError(t, err)
	assert.True(t, store.Exists("brands/old.png"))
}

func TestDeleteCascadesLogo(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("brands/logo.png")
	svc := newService(repo, store)

	repo.On("GetByID", mock.Anything, "id1").Return(&domain.Brand{Logo: "brands/logo.png"}, nil)
	repo.On("Delete", mock.Anything, "id1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "id1"))
	assert.Equal(t, 0, store.Len(), "no owned assets may survive entity deletion")
}

func TestDeleteSurvivesStorageFailure(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("brands/logo.png")
	store.FailDelete["brands/logo.png"] = true
	svc := newService(repo, store)

	repo.On("GetByID", mock.Anything, "id1").Return(&domain.Brand{Logo: "brands/logo.png"}, nil)
	repo.On("Delete", mock.Anything, "id1").Return(nil)

	// The record delete wins; the leaked asset is logged, not surfaced.
	assert.NoError(t, svc.Delete(context.Background(), "id1"))
}

func TestDeleteMissingBrand(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, assetstore.NewMemoryStore())

	repo.On("GetByID", mock.Anything, "nope").Return(nil, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), repository.ErrNotFound)
}
