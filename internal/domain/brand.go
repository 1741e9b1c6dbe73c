package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand is a car make. The logo is a single asset reference owned exclusively
// by the brand: replacing or deleting the brand purges it from the asset store.
type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Logo        string             `bson:"logo" json:"logo"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
