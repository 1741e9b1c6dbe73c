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

type HeroSlideRepository struct {
	col *mongo.Collection
}

func NewHeroSlideRepository(db *mongo.Database) *HeroSlideRepository {
	return &HeroSlideRepository{col: db.Collection("heroslides")}
}

type HeroSlideUpdate struct {
	Title       *domain.Localized
	Description *domain.Localized
	Image       *string
	Order       *int
	IsActive    *bool
	ButtonText  *domain.Localized
	ButtonLink  *string
}

func (r *HeroSlideRepository) Create(ctx context.Context, s *domain.HeroSlide) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return mapWriteErr(err)
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *HeroSlideRepository) GetByID(ctx context.Context, id string) (*domain.HeroSlide, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var s domain.HeroSlide
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns slides in display order (ascending order key).
func (r *HeroSlideRepository) List(ctx context.Context, onlyActive bool) ([]domain.HeroSlide, error) {
	filter := bson.M{}
	if onlyActive {
		filter["isActive"] = true
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}

	slides := []domain.HeroSlide{}
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *HeroSlideRepository) Update(ctx context.Context, id string, upd HeroSlideUpdate) (*domain.HeroSlide, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.ButtonText != nil {
		set["buttonText"] = *upd.ButtonText
	}
	if upd.ButtonLink != nil {
		set["buttonLink"] = *upd.ButtonLink
	}

	var s domain.HeroSlide
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, mapWriteErr(err)
	}
	return &s, nil
}

func (r *HeroSlideRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
