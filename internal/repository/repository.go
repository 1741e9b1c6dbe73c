// Package repository is the persistence layer: one repository per entity over
// MongoDB collections. Reference fields are stored as ObjectIDs and expanded
// ("populated") on read with follow-up $in fetches; missing referenced
// documents are tolerated and simply left unexpanded.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrInvalidID rejects malformed identifiers up front instead of letting
	// a query silently match nothing.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicateKey surfaces unique-index violations; the indexes are the
	// sole source of truth for uniqueness, there is no read-then-write check.
	ErrDuplicateKey = errors.New("duplicate key")
)

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// ParseIDs converts a batch of hex ids, failing on the first malformed one.
func ParseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

// IsValidID reports whether id has ObjectID shape. Used by filters that drop
// malformed references instead of failing the whole query.
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func mapWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

// findByIDs fetches documents for a set of ids into out (a *[]T).
func findByIDs(ctx context.Context, col *mongo.Collection, ids []primitive.ObjectID, out any) error {
	if len(ids) == 0 {
		return nil
	}
	cursor, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
