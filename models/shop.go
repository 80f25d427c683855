package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop maps a public storefront slug to its owning seller. A seller cannot
// register the same slug twice, but two sellers may share a slug.
type Shop struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID    string             `bson:"seller_id" json:"seller_id"`
	Slug        string             `bson:"slug" json:"slug"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Cover       string             `bson:"cover,omitempty" json:"cover,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
