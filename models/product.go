package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is owned and mutated by the seller's admin system; this API only
// reads it and decorates it with a computed discounted price.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID    string             `bson:"seller_id" json:"seller_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	MRP         float64            `bson:"mrp,omitempty" json:"mrp,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Status      string             `bson:"status" json:"status"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
