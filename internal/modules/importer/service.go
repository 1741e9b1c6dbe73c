package importer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"autohub/internal/assetstore"
	"autohub/internal/domain"
	"autohub/internal/lifecycle"
	"autohub/internal/repository"
)

const assetFolder = "profiles"

type Repository interface {
	Create(ctx context.Context, imp *domain.Importer) error
	GetByID(ctx context.Context, id string) (*domain.Importer, error)
	List(ctx context.Context) ([]domain.Importer, error)
	Update(ctx context.Context, id string, upd repository.ImporterUpdate) (*domain.Importer, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   Repository
	assets *lifecycle.Manager
}

func NewService(repo Repository, assets *lifecycle.Manager) *Service {
	return &Service{repo: repo, assets: assets}
}

// Create writes the importer with an optional profile image. The image goes
// into the store first and is rolled back if the record write fails.
func (s *Service) Create(ctx context.Context, req CreateImporterRequest, image *assetstore.Upload) (*domain.Importer, error) {
	brandIDs, err := parseBrands(req.Brands)
	if err != nil {
		return nil, err
	}

	var refs []string
	if image != nil {
		refs, err = s.assets.Attach(ctx, assetFolder, []assetstore.Upload{*image})
		if err != nil {
			return nil, err
		}
	}

	imp := &domain.Importer{
		Name:      req.Name,
		Address:   req.Address,
		Telephone: req.Telephone,
		Email:     req.Email,
		BrandIDs:  brandIDs,
	}
	if len(refs) > 0 {
		imp.ProfileImage = refs[0]
	}
	if err := s.repo.Create(ctx, imp); err != nil {
		s.assets.Cleanup(ctx, refs...)
		return nil, err
	}
	return s.repo.GetByID(ctx, imp.ID.Hex())
}

// Update applies the present fields; a new profile image replaces the stored
// one, purging the old asset only after the record write succeeds.
func (s *Service) Update(ctx context.Context, id string, req UpdateImporterRequest, image *assetstore.Upload) (*domain.Importer, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := repository.ImporterUpdate{
		Name:      req.Name,
		Address:   req.Address,
		Telephone: req.Telephone,
		Email:     req.Email,
	}
	if req.Brands != nil {
		brandIDs, err := parseBrands(req.Brands)
		if err != nil {
			return nil, err
		}
		upd.BrandIDs = brandIDs
	}

	var newRefs []string
	if image != nil {
		newRefs, err = s.assets.Attach(ctx, assetFolder, []assetstore.Upload{*image})
		if err != nil {
			return nil, err
		}
		upd.ProfileImage = &newRefs[0]
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		s.assets.Cleanup(ctx, newRefs...)
		return nil, err
	}

	if image != nil && current.ProfileImage != "" && current.ProfileImage != updated.ProfileImage {
		s.assets.Cleanup(ctx, current.ProfileImage)
	}
	return updated, nil
}

// Delete removes the record and cascades the profile image, when one exists.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.assets.Cleanup(ctx, current.ProfileImage)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Importer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Importer, error) {
	return s.repo.List(ctx)
}

func parseBrands(ids []string) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, ErrBrandRequired
	}
	return repository.ParseIDs(ids)
}
