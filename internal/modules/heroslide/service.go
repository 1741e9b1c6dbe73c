package heroslide

import (
	"context"

	"autohub/internal/assetstore"
	"autohub/internal/domain"
	"autohub/internal/lifecycle"
	"autohub/internal/repository"
)

const assetFolder = "hero"

type Repository interface {
	Create(ctx context.Context, s *domain.HeroSlide) error
	GetByID(ctx context.Context, id string) (*domain.HeroSlide, error)
	List(ctx context.Context, onlyActive bool) ([]domain.HeroSlide, error)
	Update(ctx context.Context, id string, upd repository.HeroSlideUpdate) (*domain.HeroSlide, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   Repository
	assets *lifecycle.Manager
}

func NewService(repo Repository, assets *lifecycle.Manager) *Service {
	return &Service{repo: repo, assets: assets}
}

// Create writes a slide with a mandatory image. Empty button fields fall back
// to the bilingual defaults so the frontend always has something to render.
func (s *Service) Create(ctx context.Context, req CreateHeroSlideRequest, image *assetstore.Upload) (*domain.HeroSlide, error) {
	if image == nil {
		return nil, ErrImageRequired
	}

	refs, err := s.assets.Attach(ctx, assetFolder, []assetstore.Upload{*image})
	if err != nil {
		return nil, err
	}

	slide := &domain.HeroSlide{
		Title:       domain.Localized{En: req.TitleEn, Ar: req.TitleAr},
		Description: domain.Localized{En: req.DescriptionEn, Ar: req.DescriptionAr},
		Image:       refs[0],
		Order:       req.Order,
		IsActive:    req.IsActive,
		ButtonText:  domain.Localized{En: req.ButtonTextEn, Ar: req.ButtonTextAr},
		ButtonLink:  req.ButtonLink,
	}
	if slide.ButtonText.En == "" {
		slide.ButtonText.En = domain.DefaultButtonTextEn
	}
	if slide.ButtonText.Ar == "" {
		slide.ButtonText.Ar = domain.DefaultButtonTextAr
	}
	if slide.ButtonLink == "" {
		slide.ButtonLink = domain.DefaultButtonLink
	}

	if err := s.repo.Create(ctx, slide); err != nil {
		s.assets.Cleanup(ctx, refs...)
		return nil, err
	}
	return slide, nil
}

// Update applies the present fields. A new image replaces the stored one: the
// record carries the new reference before the old asset is removed.
func (s *Service) Update(ctx context.Context, id string, req UpdateHeroSlideRequest, image *assetstore.Upload) (*domain.HeroSlide, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := repository.HeroSlideUpdate{
		Order:    req.Order,
		IsActive: req.IsActive,
	}
	if req.TitleEn != nil || req.TitleAr != nil {
		title := mergeLocalized(current.Title, req.TitleEn, req.TitleAr)
		upd.Title = &title
	}
	if req.DescriptionEn != nil || req.DescriptionAr != nil {
		desc := mergeLocalized(current.Description, req.DescriptionEn, req.DescriptionAr)
		upd.Description = &desc
	}
	if req.ButtonTextEn != nil || req.ButtonTextAr != nil {
		text := mergeLocalized(current.ButtonText, req.ButtonTextEn, req.ButtonTextAr)
		upd.ButtonText = &text
	}
	if req.ButtonLink != nil {
		upd.ButtonLink = req.ButtonLink
	}

	var newRefs []string
	if image != nil {
		newRefs, err = s.assets.Attach(ctx, assetFolder, []assetstore.Upload{*image})
		if err != nil {
			return nil, err
		}
		upd.Image = &newRefs[0]
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		s.assets.Cleanup(ctx, newRefs...)
		return nil, err
	}

	if image != nil && current.Image != "" && current.Image != updated.Image {
		s.assets.Cleanup(ctx, current.Image)
	}
	return updated, nil
}

// Delete removes the slide and cascades its image.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.assets.Cleanup(ctx, current.Image)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.HeroSlide, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all slides, or only active ones, sorted by Order ascending.
func (s *Service) List(ctx context.Context, onlyActive bool) ([]domain.HeroSlide, error) {
	return s.repo.List(ctx, onlyActive)
}

func mergeLocalized(current domain.Localized, en, ar *string) domain.Localized {
	if en != nil {
		current.En = *en
	}
	if ar != nil {
		current.Ar = *ar
	}
	return current
}
