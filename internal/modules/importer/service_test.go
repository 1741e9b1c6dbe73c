package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"autohub/internal/assetstore"
	"autohub/internal/domain"
	"autohub/internal/lifecycle"
	"autohub/internal/repository"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, imp *domain.Importer) error {
	args := m.Called(ctx, imp)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Importer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Importer), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]domain.Importer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Importer), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id string, upd repository.ImporterUpdate) (*domain.Importer, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Importer), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newService(repo Repository, store assetstore.Store) *Service {
	return NewService(repo, lifecycle.New(store, zap.NewNop()))
}

func validCreate() CreateImporterRequest {
	return CreateImporterRequest{
		Name:      "Gulf Motors",
		Address:   "Industrial Zone 4",
		Telephone: "+97150000000",
		Email:     "sales@gulfmotors.example",
		Brands:    []string{primitive.NewObjectID().Hex()},
	}
}

func imageUpload() *assetstore.Upload {
	return &assetstore.Upload{Name: "profile.png", ContentType: "image/png", Data: []byte{0x89, 0x50}}
}

func TestCreateRequiresBrands(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	req := validCreate()
	req.Brands = nil
	_, err := svc.Create(context.Background(), req, imageUpload())
	assert.ErrorIs(t, err, ErrBrandRequired)
	assert.Equal(t, 0, store.Len())
}

func TestCreateWithoutImageIsAllowed(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	var created *domain.Importer
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.Importer)
		created.ID = primitive.NewObjectID()
	}).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Importer{}, nil)

	_, err := svc.Create(context.Background(), validCreate(), nil)
	require.NoError(t, err)
	assert.Empty(t, created.ProfileImage)
	assert.Equal(t, 0, store.Len())
}

func TestCreateRollsBackImageOnRepoFailure(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Create(context.Background(), validCreate(), imageUpload())
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestUpdateReplacesProfileImage(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("profiles/old.png")
	svc := newService(repo, store)

	repo.On("GetByID", mock.Anything, "id1").Return(&domain.Importer{ProfileImage: "profiles/old.png"}, nil)
	repo.On("Update", mock.Anything, "id1", mock.MatchedBy(func(upd repository.ImporterUpdate) bool {
		return upd.ProfileImage != nil && *upd.ProfileImage != "profiles/old.png"
	})).Return(&domain.Importer{ProfileImage: "profiles/1.png"}, nil)

	updated, err := svc.Update(context.Background(), "id1", UpdateImporterRequest{}, imageUpload())
	require.NoError(t, err)

	assert.False(t, store.Exists("profiles/old.png"))
	assert.True(t, store.Exists(updated.ProfileImage))
	assert.Equal(t, 1, store.Len())
}

func TestDeleteCascadesProfileImage(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("profiles/p.png")
	svc := newService(repo, store)

	repo.On("GetByID", mock.Anything, "id1").Return(&domain.Importer{ProfileImage: "profiles/p.png"}, nil)
	repo.On("Delete", mock.Anything, "id1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "id1"))
	assert.Equal(t, 0, store.Len())
}

func TestDeleteWithoutImage(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, assetstore.NewMemoryStore())

	repo.On("GetByID", mock.Anything, "id1").Return(&domain.Importer{}, nil)
	repo.On("Delete", mock.Anything, "id1").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "id1"))
}
