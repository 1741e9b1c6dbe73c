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

type ImporterRepository struct {
	importers *mongo.Collection
	brands    *mongo.Collection
}

func NewImporterRepository(db *mongo.Database) *ImporterRepository {
	return &ImporterRepository{
		importers: db.Collection("importers"),
		brands:    db.Collection("brands"),
	}
}

type ImporterUpdate struct {
	Name         *string
	Address      *string
	Telephone    *string
	Email        *string
	ProfileImage *string
	BrandIDs     []primitive.ObjectID
}

func (r *ImporterRepository) Create(ctx context.Context, imp *domain.Importer) error {
	now := time.Now().UTC()
	imp.CreatedAt = now
	imp.UpdatedAt = now

	res, err := r.importers.InsertOne(ctx, imp)
	if err != nil {
		return mapWriteErr(err)
	}
	imp.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ImporterRepository) GetByID(ctx context.Context, id string) (*domain.Importer, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var imp domain.Importer
	if err := r.importers.FindOne(ctx, bson.M{"_id": oid}).Decode(&imp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.populate(ctx, []*domain.Importer{&imp}); err != nil {
		return nil, err
	}
	return &imp, nil
}

func (r *ImporterRepository) List(ctx context.Context) ([]domain.Importer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.importers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	importers := []domain.Importer{}
	if err := cursor.All(ctx, &importers); err != nil {
		return nil, err
	}

	ptrs := make([]*domain.Importer, len(importers))
	for i := range importers {
		ptrs[i] = &importers[i]
	}
	if err := r.populate(ctx, ptrs); err != nil {
		return nil, err
	}
	return importers, nil
}

func (r *ImporterRepository) Update(ctx context.Context, id string, upd ImporterUpdate) (*domain.Importer, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.Telephone != nil {
		set["telephone"] = *upd.Telephone
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.ProfileImage != nil {
		set["profileImage"] = *upd.ProfileImage
	}
	if upd.BrandIDs != nil {
		set["brands"] = upd.BrandIDs
	}

	var imp domain.Importer
	err = r.importers.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&imp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, mapWriteErr(err)
	}
	if err := r.populate(ctx, []*domain.Importer{&imp}); err != nil {
		return nil, err
	}
	return &imp, nil
}

func (r *ImporterRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.importers.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ImporterRepository) populate(ctx context.Context, importers []*domain.Importer) error {
	if len(importers) == 0 {
		return nil
	}

	brandSet := map[primitive.ObjectID]bool{}
	for _, imp := range importers {
		for _, id := range imp.BrandIDs {
			brandSet[id] = true
		}
	}

	var brands []domain.Brand
	if err := findByIDs(ctx, r.brands, keys(brandSet), &brands); err != nil {
		return err
	}
	brandByID := map[primitive.ObjectID]domain.Brand{}
	for _, b := range brands {
		brandByID[b.ID] = b
	}

	for _, imp := range importers {
		imp.Brands = make([]domain.Brand, 0, len(imp.BrandIDs))
		for _, id := range imp.BrandIDs {
			if b, ok := brandByID[id]; ok {
				imp.Brands = append(imp.Brands, b)
			}
		}
	}
	return nil
}
