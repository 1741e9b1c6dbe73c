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

type BrandRepository struct {
	col *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{col: db.Collection("brands")}
}

// BrandUpdate carries the fields of a partial update; nil means untouched.
type BrandUpdate struct {
	Name        *string
	Description *string
	Logo        *string
	IsActive    *bool
}

func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return mapWriteErr(err)
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var b domain.Brand
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List returns brands sorted by name ascending, optionally only active ones.
func (r *BrandRepository) List(ctx context.Context, onlyActive bool) ([]domain.Brand, error) {
	filter := bson.M{}
	if onlyActive {
		filter["isActive"] = true
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	brands := []domain.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepository) Update(ctx context.Context, id string, upd BrandUpdate) (*domain.Brand, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Logo != nil {
		set["logo"] = *upd.Logo
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}

	var b domain.Brand
	err = r.col.FindOneAndUpdate(ctx,
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
	return &b, nil
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
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
