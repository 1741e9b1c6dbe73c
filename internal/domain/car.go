package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BodyType string

const (
	BodySedan     BodyType = "SEDAN"
	BodySUV       BodyType = "SUV"
	BodyPickup    BodyType = "PICKUP"
	BodyBerlin    BodyType = "BERLIN"
	BodyCompact   BodyType = "COMPACT"
	BodyCoupe     BodyType = "COUPE"
	BodyCabriolet BodyType = "CABRIOLET"
	BodyMonospace BodyType = "MONOSPACE"
)

func (t BodyType) Valid() bool {
	switch t {
	case BodySedan, BodySUV, BodyPickup, BodyBerlin, BodyCompact, BodyCoupe, BodyCabriolet, BodyMonospace:
		return true
	}
	return false
}

// Car is a listing. Photos is an ordered list of asset references (at least
// one), all exclusively owned by the car. BrandIDs and ImporterID are stored
// as bare references; Brands and Importer carry the expanded documents on
// reads that request population.
type Car struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Model       string               `bson:"model" json:"model"`
	Type        BodyType             `bson:"type" json:"type"`
	Price       string               `bson:"price" json:"price"`
	Description Localized            `bson:"description" json:"description"`
	Photos      []string             `bson:"photos" json:"photos"`
	BrandIDs    []primitive.ObjectID `bson:"brands" json:"-"`
	ImporterID  primitive.ObjectID   `bson:"importer" json:"-"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`

	Brands   []Brand   `bson:"-" json:"brands,omitempty"`
	Importer *Importer `bson:"-" json:"importer,omitempty"`
}
