package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultButtonTextEn = "Learn More"
	DefaultButtonTextAr = "اقرأ المزيد"
	DefaultButtonLink   = "/search"
)

// HeroSlide is a homepage banner. Slides render sorted by Order ascending.
type HeroSlide struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       Localized          `bson:"title" json:"title"`
	Description Localized          `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	ButtonText  Localized          `bson:"buttonText" json:"buttonText"`
	ButtonLink  string             `bson:"buttonLink" json:"buttonLink"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
