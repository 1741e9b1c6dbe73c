package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"autohub/internal/domain"
)

type BlogRepository struct {
	blogs *mongo.Collection
	users *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		blogs: db.Collection("blogs"),
		users: db.Collection("users"),
	}
}

// BlogFilter narrows listings. Search uses the text index and combines with
// the other filters with AND semantics.
type BlogFilter struct {
	Published *bool
	Category  string
	Tag       string
	Search    string
	Page      int
	Limit     int
}

type BlogUpdate struct {
	Title         *domain.Localized
	Slug          *string
	Content       *domain.Localized
	Excerpt       *domain.Localized
	FeaturedImage *string
	Published     *bool
	Categories    []string
	Tags          []string
}

func (r *BlogRepository) Create(ctx context.Context, b *domain.Blog) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Categories == nil {
		b.Categories = []string{}
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}

	res, err := r.blogs.InsertOne(ctx, b)
	if err != nil {
		return mapWriteErr(err)
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var b domain.Blog
	if err := r.blogs.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.populate(ctx, []*domain.Blog{&b}); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBySlug resolves a post by its slug; with publishedOnly set, drafts are
// indistinguishable from missing posts.
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Blog, error) {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["published"] = true
	}

	var b domain.Blog
	if err := r.blogs.FindOne(ctx, filter).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.populate(ctx, []*domain.Blog{&b}); err != nil {
		return nil, err
	}
	return &b, nil
}

// SlugExists reports whether another post already uses slug, optionally
// excluding one post id (for updates).
func (r *BlogRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		oid, err := parseID(excludeID)
		if err != nil {
			return false, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	count, err := r.blogs.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BlogRepository) List(ctx context.Context, f BlogFilter) ([]domain.Blog, Pagination, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	filter := bson.M{}
	if f.Published != nil {
		filter["published"] = *f.Published
	}
	if f.Category != "" {
		filter["categories"] = f.Category
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Search != "" {
		filter["$text"] = bson.M{"$search": f.Search}
	}

	total, err := r.blogs.CountDocuments(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := r.blogs.Find(ctx, filter, opts)
	if err != nil {
		return nil, Pagination{}, err
	}

	posts := []domain.Blog{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, Pagination{}, err
	}

	ptrs := make([]*domain.Blog, len(posts))
	for i := range posts {
		ptrs[i] = &posts[i]
	}
	if err := r.populate(ctx, ptrs); err != nil {
		return nil, Pagination{}, err
	}

	pages := int((total + int64(f.Limit) - 1) / int64(f.Limit))
	return posts, Pagination{Total: total, Page: f.Page, Pages: pages}, nil
}

func (r *BlogRepository) Update(ctx context.Context, id string, upd BlogUpdate) (*domain.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Excerpt != nil {
		set["excerpt"] = *upd.Excerpt
	}
	if upd.FeaturedImage != nil {
		set["featuredImage"] = *upd.FeaturedImage
	}
	if upd.Published != nil {
		set["published"] = *upd.Published
	}
	if upd.Categories != nil {
		set["categories"] = upd.Categories
	}
	if upd.Tags != nil {
		set["tags"] = upd.Tags
	}

	var b domain.Blog
	err = r.blogs.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, mapWriteErr(err)
	}
	if err := r.populate(ctx, []*domain.Blog{&b}); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.blogs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// populate resolves authors to their public shape. A post whose author no
// longer exists keeps a nil Author.
func (r *BlogRepository) populate(ctx context.Context, posts []*domain.Blog) error {
	if len(posts) == 0 {
		return nil
	}

	authorSet := map[primitive.ObjectID]bool{}
	for _, p := range posts {
		if !p.AuthorID.IsZero() {
			authorSet[p.AuthorID] = true
		}
	}

	var users []domain.User
	if err := findByIDs(ctx, r.users, keys(authorSet), &users); err != nil {
		return err
	}
	byID := map[primitive.ObjectID]domain.PublicUser{}
	for i := range users {
		byID[users[i].ID] = users[i].Public()
	}

	for _, p := range posts {
		if author, ok := byID[p.AuthorID]; ok {
			authorCopy := author
			p.Author = &authorCopy
		}
	}
	return nil
}
