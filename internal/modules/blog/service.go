package blog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"autohub/internal/assetstore"
	"autohub/internal/domain"
	"autohub/internal/lifecycle"
	"autohub/internal/pkg/slug"
	"autohub/internal/repository"
)

const assetFolder = "blogs"

type Repository interface {
	Create(ctx context.Context, b *domain.Blog) error
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Blog, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	List(ctx context.Context, f repository.BlogFilter) ([]domain.Blog, repository.Pagination, error)
	Update(ctx context.Context, id string, upd repository.BlogUpdate) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   Repository
	assets *lifecycle.Manager
}

func NewService(repo Repository, assets *lifecycle.Manager) *Service {
	return &Service{repo: repo, assets: assets}
}

// Actor identifies the authenticated caller for ownership checks.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) canModify(b *domain.Blog) bool {
	return a.Role == string(domain.RoleAdmin) || b.AuthorID.Hex() == a.UserID
}

// Create writes a post authored by the caller. The slug derives from the
// English title; a colliding slug gets a time-derived suffix before the
// unique index sees it.
func (s *Service) Create(ctx context.Context, actor Actor, req CreateBlogRequest, image *assetstore.Upload) (*domain.Blog, error) {
	authorID, err := primitive.ObjectIDFromHex(actor.UserID)
	if err != nil {
		return nil, ErrBadAuthorID
	}

	postSlug, err := s.uniqueSlug(ctx, req.TitleEn, "")
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

	b := &domain.Blog{
		Title:      domain.Localized{En: req.TitleEn, Ar: req.TitleAr},
		Slug:       postSlug,
		Content:    domain.Localized{En: req.ContentEn, Ar: req.ContentAr},
		Excerpt:    domain.Localized{En: req.ExcerptEn, Ar: req.ExcerptAr},
		Published:  req.Published,
		AuthorID:   authorID,
		Categories: parseList(req.Categories),
		Tags:       parseList(req.Tags),
	}
	if len(refs) > 0 {
		b.FeaturedImage = refs[0]
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.assets.Cleanup(ctx, refs...)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return s.repo.GetByID(ctx, b.ID.Hex())
}

// Update is restricted to the author or an admin. Changing the English title
// refreshes the slug; a new featured image replaces and purges the old one.
func (s *Service) Update(ctx context.Context, id string, actor Actor, req UpdateBlogRequest, image *assetstore.Upload) (*domain.Blog, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canModify(current) {
		return nil, ErrNotAllowed
	}

	upd := repository.BlogUpdate{Published: req.Published}

	if req.TitleEn != nil || req.TitleAr != nil {
		title := current.Title
		if req.TitleEn != nil {
			title.En = *req.TitleEn
		}
		if req.TitleAr != nil {
			title.Ar = *req.TitleAr
		}
		upd.Title = &title

		if req.TitleEn != nil && *req.TitleEn != current.Title.En {
			newSlug, err := s.uniqueSlug(ctx, *req.TitleEn, id)
			if err != nil {
				return nil, err
			}
			upd.Slug = &newSlug
		}
	}
	if req.ContentEn != nil || req.ContentAr != nil {
		content := mergeLocalized(current.Content, req.ContentEn, req.ContentAr)
		upd.Content = &content
	}
	if req.ExcerptEn != nil || req.ExcerptAr != nil {
		excerpt := mergeLocalized(current.Excerpt, req.ExcerptEn, req.ExcerptAr)
		upd.Excerpt = &excerpt
	}
	if req.Categories != nil {
		upd.Categories = parseList(*req.Categories)
	}
	if req.Tags != nil {
		upd.Tags = parseList(*req.Tags)
	}

	var newRefs []string
	if image != nil {
		newRefs, err = s.assets.Attach(ctx, assetFolder, []assetstore.Upload{*image})
		if err != nil {
			return nil, err
		}
		upd.FeaturedImage = &newRefs[0]
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		s.assets.Cleanup(ctx, newRefs...)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	if image != nil && current.FeaturedImage != "" && current.FeaturedImage != updated.FeaturedImage {
		s.assets.Cleanup(ctx, current.FeaturedImage)
	}
	return updated, nil
}

// Delete is restricted to the author or an admin and cascades the featured
// image.
func (s *Service) Delete(ctx context.Context, id string, actor Actor) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.canModify(current) {
		return ErrNotAllowed
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.assets.Cleanup(ctx, current.OwnedAssets()...)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	return s.repo.GetByID(ctx, id)
}

// GetPublishedBySlug resolves the public permalink; drafts stay invisible.
func (s *Service) GetPublishedBySlug(ctx context.Context, postSlug string) (*domain.Blog, error) {
	return s.repo.GetBySlug(ctx, postSlug, true)
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Blog, repository.Pagination, error) {
	return s.repo.List(ctx, repository.BlogFilter{
		Published: q.Published,
		Category:  q.Category,
		Tag:       q.Tag,
		Search:    q.Search,
		Page:      q.Page,
		Limit:     q.Limit,
	})
}

// ListPublished is the public listing.
func (s *Service) ListPublished(ctx context.Context, q ListQuery) ([]domain.Blog, repository.Pagination, error) {
	published := true
	q.Published = &published
	return s.List(ctx, q)
}

func (s *Service) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	candidate := slug.Make(title)
	taken, err := s.repo.SlugExists(ctx, candidate, excludeID)
	if err != nil {
		return "", err
	}
	if taken {
		candidate = slug.Disambiguate(candidate)
	}
	return candidate, nil
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
