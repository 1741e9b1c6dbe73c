package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a post. Slug is unique, derived from the English title and suffixed
// on collision. FeaturedImage is an optional asset reference owned by the post.
type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         Localized          `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Content       Localized          `bson:"content" json:"content"`
	Excerpt       Localized          `bson:"excerpt" json:"excerpt"`
	FeaturedImage string             `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Published     bool               `bson:"published" json:"published"`
	AuthorID      primitive.ObjectID `bson:"author" json:"-"`
	Categories    []string           `bson:"categories" json:"categories"`
	Tags          []string           `bson:"tags" json:"tags"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`

	Author *PublicUser `bson:"-" json:"author,omitempty"`
}

// OwnedAssets returns every asset reference the post owns.
func (b *Blog) OwnedAssets() []string {
	if b.FeaturedImage == "" {
		return nil
	}
	return []string{b.FeaturedImage}
}
