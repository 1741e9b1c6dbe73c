package heroslide

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

func (m *mockRepo) Create(ctx context.Context, s *domain.HeroSlide) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.HeroSlide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroSlide), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, onlyActive bool) ([]domain.HeroSlide, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeroSlide), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id string, upd repository.HeroSlideUpdate) (*domain.HeroSlide, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroSlide), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newService(repo Repository, store assetstore.Store) *Service {
	return NewService(repo, lifecycle.New(store, zap.NewNop()))
}

func slideImage() *assetstore.Upload {
	return &assetstore.Upload{Name: "hero.webp", ContentType: "image/webp", Data: []byte{0x52, 0x49}}
}

func TestCreateRequiresImage(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	_, err := svc.Create(context.Background(), CreateHeroSlideRequest{TitleEn: "Summer sale"}, nil)
	assert.ErrorIs(t, err, ErrImageRequired)
	assert.Equal(t, 0, store.Len())
}

func TestCreateFillsButtonDefaults(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, assetstore.NewMemoryStore())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	slide, err := svc.Create(context.Background(), CreateHeroSlideRequest{TitleEn: "Summer sale"}, slideImage())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultButtonTextEn, slide.ButtonText.En)
	assert.Equal(t, domain.DefaultButtonTextAr, slide.ButtonText.Ar)
	assert.Equal(t, domain.DefaultButtonLink, slide.ButtonLink)
}

func TestCreateKeepsExplicitButtonFields(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, assetstore.NewMemoryStore())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	slide, err := svc.Create(context.Background(), CreateHeroSlideRequest{
		TitleEn:      "Launch",
		ButtonTextEn: "Book now",
		ButtonLink:   "/contact",
	}, slideImage())
	require.NoError(t, err)
	assert.Equal(t, "Book now", slide.ButtonText.En)
	assert.Equal(t, domain.DefaultButtonTextAr, slide.ButtonText.Ar, "unset language still defaults")
	assert.Equal(t, "/contact", slide.ButtonLink)
}

func TestCreateRollsBackImageOnRepoFailure(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	svc := newService(repo, store)

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Create(context.Background(), CreateHeroSlideRequest{TitleEn: "x"}, slideImage())
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestUpdateReplacesImage(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("hero/old.webp")
	svc := newService(repo, store)

	repo.On("GetByID", mock.Anything, "id1").Return(&domain.HeroSlide{Image: "hero/old.webp"}, nil)
	repo.On("Update", mock.Anything, "id1", mock.MatchedBy(func(upd repository.HeroSlideUpdate) bool {
		return upd.Image != nil && *upd.Image != "hero/old.webp"
	})).Return(&domain.HeroSlide{Image: "hero/1.webp"}, nil)

	updated, err := svc.Update(context.Background(), "id1", UpdateHeroSlideRequest{}, slideImage())
	require.NoError(t, err)
	assert.False(t, store.Exists("hero/old.webp"))
	assert.True(t, store.Exists(updated.Image))
	assert.Equal(t, 1, store.Len())
}

func TestUpdateMergesLocalizedFields(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, assetstore.NewMemoryStore())

	ar := "عرض الصيف"
	current := &domain.HeroSlide{Title: domain.Localized{En: "Summer sale", Ar: "old"}}
	repo.On("GetByID", mock.Anything, "id1").Return(current, nil)
	repo.On("Update", mock.Anything, "id1", mock.MatchedBy(func(upd repository.HeroSlideUpdate) bool {
		// The untouched English half survives a single-language update.
		return upd.Title != nil && upd.Title.En == "Summer sale" && upd.Title.Ar == ar
	})).Return(&domain.HeroSlide{}, nil)

	_, err := svc.Update(context.Background(), "id1", UpdateHeroSlideRequest{TitleAr: &ar}, nil)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteCascadesImage(t *testing.T) {
	repo := new(mockRepo)
	store := assetstore.NewMemoryStore()
	store.Seed("hero/h.webp")
	svc := newService(repo, store)

	repo.On("GetByID", mock.Anything, "id1").Return(&domain.HeroSlide{Image: "hero/h.webp"}, nil)
	repo.On("Delete", mock.Anything, "id1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "id1"))
	assert.Equal(t, 0, store.Len())
}
