package brand

import (
	"context"
	"errors"

	"autohub/internal/assetstore"
	"autohub/internal/domain"
	"autohub/internal/lifecycle"
	"autohub/internal/repository"
)

const assetFolder = "brands"

type Repository interface {
	Create(ctx context.Context, b *domain.Brand) error
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context, onlyActive bool) ([]domain.Brand, error)
	Update(ctx context.Context, id string, upd repository.BrandUpdate) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   Repository
	assets *lifecycle.Manager
}

func NewService(repo Repository, assets *lifecycle.Manager) *Service {
	return &Service{repo: repo, assets: assets}
}

// Create stores the logo first, then the record. A repository failure rolls
// the fresh logo back out of the store; name uniqueness is enforced by the
// collated index, surfaced here as ErrNameTaken.
func (s *Service) Create(ctx context.Context, req CreateBrandRequest, logo *assetstore.Upload) (*domain.Brand, error) {
	if logo == nil {
		return nil, ErrLogoRequired
	}

	refs, err := s.assets.Attach(ctx, assetFolder, []assetstore.Upload{*logo})
	if err != nil {
		return nil, err
	}

	b := &domain.Brand{
		Name:        req.Name,
		Description: req.Description,
		Logo:        refs[0],
		IsActive:    req.IsActive,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.assets.Cleanup(ctx, refs...)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return b, nil
}

// Update applies the present fields only. A new logo replaces the stored one:
// the record is updated with the new reference before the old asset is
// removed, so a failed delete leaks a file rather than dangling a pointer.
func (s *Service) Update(ctx context.Context, id string, req UpdateBrandRequest, logo *assetstore.Upload) (*domain.Brand, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := repository.BrandUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}

	var newRefs []string
	if logo != nil {
		newRefs, err = s.assets.Attach(ctx, assetFolder, []assetstore.Upload{*logo})
		if err != nil {
			return nil, err
		}
		upd.Logo = &newRefs[0]
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		s.assets.Cleanup(ctx, newRefs...)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	if logo != nil && current.Logo != "" && current.Logo != updated.Logo {
		s.assets.Cleanup(ctx, current.Logo)
	}
	return updated, nil
}

// Delete removes the record, then purges the owned logo best-effort.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.assets.Cleanup(ctx, current.Logo)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, onlyActive bool) ([]domain.Brand, error) {
	return s.repo.List(ctx, onlyActive)
}
