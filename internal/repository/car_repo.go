package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"autohub/internal/domain"
)

type CarRepository struct {
	cars      *mongo.Collection
	brands    *mongo.Collection
	importers *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{
		cars:      db.Collection("cars"),
		brands:    db.Collection("brands"),
		importers: db.Collection("importers"),
	}
}

// CarFilter narrows listings and searches. A malformed BrandID drops the
// brand filter the way the search endpoint always has, instead of erroring.
type CarFilter struct {
	BrandID string
	Type    string
	Model   string
	Limit   int64
}

// CarUpdate carries partial update fields; nil means untouched.
type CarUpdate struct {
	Model       *string
	Type        *string
	Price       *string
	Description *domain.Localized
	Photos      []string
	BrandIDs    []primitive.ObjectID
	ImporterID  *primitive.ObjectID
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.cars.InsertOne(ctx, c)
	if err != nil {
		return mapWriteErr(err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var c domain.Car
	if err := r.cars.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.populate(ctx, []*domain.Car{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns cars newest first, references expanded.
func (r *CarRepository) List(ctx context.Context, f CarFilter) ([]domain.Car, error) {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.BrandID != "" && IsValidID(f.BrandID) {
		oid, _ := primitive.ObjectIDFromHex(f.BrandID)
		filter["brands"] = oid
	}
	if f.Model != "" {
		filter["model"] = bson.M{"$regex": regexp.QuoteMeta(f.Model), "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cursor, err := r.cars.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	cars := []domain.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	if err := r.populateSlice(ctx, cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// Similar returns up to limit other cars sharing at least one brand with car,
// newest first.
func (r *CarRepository) Similar(ctx context.Context, car *domain.Car, limit int64) ([]domain.Car, error) {
	filter := bson.M{
		"_id":    bson.M{"$ne": car.ID},
		"brands": bson.M{"$in": car.BrandIDs},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.cars.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	cars := []domain.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	if err := r.populateSlice(ctx, cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) Update(ctx context.Context, id string, upd CarUpdate) (*domain.Car, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Model != nil {
		set["model"] = *upd.Model
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Photos != nil {
		set["photos"] = upd.Photos
	}
	if upd.BrandIDs != nil {
		set["brands"] = upd.BrandIDs
	}
	if upd.ImporterID != nil {
		set["importer"] = *upd.ImporterID
	}

	var c domain.Car
	err = r.cars.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, mapWriteErr(err)
	}
	if err := r.populate(ctx, []*domain.Car{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.cars.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CarRepository) populateSlice(ctx context.Context, cars []domain.Car) error {
	ptrs := make([]*domain.Car, len(cars))
	for i := range cars {
		ptrs[i] = &cars[i]
	}
	return r.populate(ctx, ptrs)
}

// populate expands brand and importer references across a batch with two $in
// fetches. A reference that resolves to nothing is skipped, not an error.
func (r *CarRepository) populate(ctx context.Context, cars []*domain.Car) error {
	if len(cars) == 0 {
		return nil
	}

	brandSet := map[primitive.ObjectID]bool{}
	importerSet := map[primitive.ObjectID]bool{}
	for _, c := range cars {
		for _, id := range c.BrandIDs {
			brandSet[id] = true
		}
		if !c.ImporterID.IsZero() {
			importerSet[c.ImporterID] = true
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

	var importers []domain.Importer
	if err := findByIDs(ctx, r.importers, keys(importerSet), &importers); err != nil {
		return err
	}
	importerByID := map[primitive.ObjectID]domain.Importer{}
	for _, imp := range importers {
		importerByID[imp.ID] = imp
	}

	for _, c := range cars {
		c.Brands = make([]domain.Brand, 0, len(c.BrandIDs))
		for _, id := range c.BrandIDs {
			if b, ok := brandByID[id]; ok {
				c.Brands = append(c.Brands, b)
			}
		}
		if imp, ok := importerByID[c.ImporterID]; ok {
			impCopy := imp
			c.Importer = &impCopy
		}
	}
	return nil
}

func keys(set map[primitive.ObjectID]bool) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
