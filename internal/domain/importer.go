package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Importer struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Address      string               `bson:"address" json:"address"`
	Telephone    string               `bson:"telephone" json:"telephone"`
	Email        string               `bson:"email" json:"email"`
	ProfileImage string               `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	BrandIDs     []primitive.ObjectID `bson:"brands" json:"-"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`

	Brands []Brand `bson:"-" json:"brands,omitempty"`
}
