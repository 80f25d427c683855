package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer is a promotional banner surfaced on the storefront while its date
// window is open.
type Offer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID   string             `bson:"seller_id" json:"seller_id"`
	Title      string             `bson:"title" json:"title"`
	BannerURL  string             `bson:"banner_url,omitempty" json:"banner_url,omitempty"`
	Status     string             `bson:"status" json:"status"`
	StartsAt   *time.Time         `bson:"starts_at,omitempty" json:"starts_at,omitempty"`
	EndsAt     *time.Time         `bson:"ends_at,omitempty" json:"ends_at,omitempty"`
	ProductIDs []string           `bson:"product_ids,omitempty" json:"product_ids,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
