package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog record. MediaKey is the provider deletion handle for
// the stored image: it is never set without ImageURL, though ImageURL may
// stand alone when the local backend (which issues no keys) stored the file.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	SubCategory string             `json:"sub_category,omitempty" bson:"sub_category,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price,omitempty" bson:"price,omitempty"`
	ImageURL    *string            `json:"image_url" bson:"image_url"`
	MediaKey    *string            `json:"media_key" bson:"media_key"`
	Featured    bool               `json:"featured" bson:"featured"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// FeaturedRequest mirrors the PATCH /api/products/:id body. The pointer keeps
// an explicit false distinguishable from a missing field.
type FeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}
