package car

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"autohub/internal/assetstore"
	"autohub/internal/domain"
	"autohub/internal/lifecycle"
	"autohub/internal/repository"
)

const (
	assetFolder  = "cars"
	maxPhotos    = 10
	similarLimit = 3
)

type Repository interface {
	Create(ctx context.Context, c *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context, f repository.CarFilter) ([]domain.Car, error)
	Similar(ctx context.Context, c *domain.Car, limit int64) ([]domain.Car, error)
	Update(ctx context.Context, id string, upd repository.CarUpdate) (*domain.Car, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   Repository
	assets *lifecycle.Manager
}

func NewService(repo Repository, assets *lifecycle.Manager) *Service {
	return &Service{repo: repo, assets: assets}
}

// Create validates references first so nothing is stored for a doomed
// request, then attaches the photo batch and writes the record. A repository
// failure rolls the whole batch back out of the store.
func (s *Service) Create(ctx context.Context, req CreateCarRequest, photos []assetstore.Upload) (*domain.Car, error) {
	if len(photos) == 0 {
		return nil, ErrPhotosRequired
	}
	if len(photos) > maxPhotos {
		return nil, ErrTooManyPhotos
	}

	bodyType := domain.BodyType(strings.ToUpper(req.Type))
	if !bodyType.Valid() {
		return nil, ErrInvalidBodyType
	}

	brandIDs, err := parseBrands(req.Brands)
	if err != nil {
		return nil, err
	}
	importerID, err := parseImporter(req.Importer)
	if err != nil {
		return nil, err
	}

	refs, err := s.assets.Attach(ctx, assetFolder, photos)
	if err != nil {
		return nil, err
	}

	car := &domain.Car{
		Model: req.Model,
		Type:  bodyType,
		Price: req.Price,
		Description: domain.Localized{
			En: req.DescriptionEn,
			Ar: req.DescriptionAr,
		},
		Photos:     refs,
		BrandIDs:   brandIDs,
		ImporterID: importerID,
	}
	if err := s.repo.Create(ctx, car); err != nil {
		s.assets.Cleanup(ctx, refs...)
		return nil, err
	}
	return s.repo.GetByID(ctx, car.ID.Hex())
}

// Update applies the present scalar fields and, when the request touches
// photos, reconciles the photo set: retained existing references keep their
// order, fresh uploads are appended, and everything dropped is purged only
// after the record write succeeds.
func (s *Service) Update(ctx context.Context, id string, req UpdateCarRequest, photos []assetstore.Upload) (*domain.Car, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := repository.CarUpdate{
		Model: req.Model,
		Price: req.Price,
	}
	if req.Type != nil {
		bodyType := domain.BodyType(strings.ToUpper(*req.Type))
		if !bodyType.Valid() {
			return nil, ErrInvalidBodyType
		}
		t := string(bodyType)
		upd.Type = &t
	}
	if req.DescriptionEn != nil || req.DescriptionAr != nil {
		desc := current.Description
		if req.DescriptionEn != nil {
			desc.En = *req.DescriptionEn
		}
		if req.DescriptionAr != nil {
			desc.Ar = *req.DescriptionAr
		}
		upd.Description = &desc
	}
	if req.Brands != nil {
		brandIDs, err := parseBrands(req.Brands)
		if err != nil {
			return nil, err
		}
		upd.BrandIDs = brandIDs
	}
	if req.Importer != nil {
		importerID, err := parseImporter(*req.Importer)
		if err != nil {
			return nil, err
		}
		upd.ImporterID = &importerID
	}

	var toDelete []string
	if req.ReplacePhotos || len(photos) > 0 {
		if len(photos) > maxPhotos {
			return nil, ErrTooManyPhotos
		}
		newRefs, err := s.assets.Attach(ctx, assetFolder, photos)
		if err != nil {
			return nil, err
		}
		final, dropped := lifecycle.ReconcilePhotos(current.Photos, req.ExistingPhotos, newRefs)
		if len(final) == 0 {
			s.assets.Cleanup(ctx, newRefs...)
			return nil, ErrPhotosRequired
		}
		if len(final) > maxPhotos {
			s.assets.Cleanup(ctx, newRefs...)
			return nil, ErrTooManyPhotos
		}
		upd.Photos = final
		toDelete = dropped

		updated, err := s.repo.Update(ctx, id, upd)
		if err != nil {
			s.assets.Cleanup(ctx, newRefs...)
			return nil, err
		}
		s.assets.Cleanup(ctx, toDelete...)
		return updated, nil
	}

	return s.repo.Update(ctx, id, upd)
}

// Delete removes the record, then purges every owned photo best-effort.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.assets.Cleanup(ctx, current.Photos...)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, brandID string) ([]domain.Car, error) {
	return s.repo.List(ctx, repository.CarFilter{BrandID: brandID})
}

// Search narrows the listing by body type, brand and model substring. The
// frontend's "all-*" dropdown placeholders mean "no filter".
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]domain.Car, error) {
	f := repository.CarFilter{}
	if q.Type != "" && q.Type != wildcardType {
		f.Type = strings.ToUpper(q.Type)
	}
	if q.Brand != "" && q.Brand != wildcardBrand {
		f.BrandID = q.Brand
	}
	if q.Model != "" && q.Model != wildcardModel {
		f.Model = q.Model
	}
	return s.repo.List(ctx, f)
}

// Similar returns up to three other cars sharing a brand with the given one.
func (s *Service) Similar(ctx context.Context, id string) ([]domain.Car, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.Similar(ctx, current, similarLimit)
}

func parseBrands(ids []string) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, ErrBrandRequired
	}
	return repository.ParseIDs(ids)
}

func parseImporter(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, ErrImporterRequired
	}
	ids, err := repository.ParseIDs([]string{id})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return ids[0], nil
}
