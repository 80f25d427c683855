package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a storefront account, scoped to one seller. (seller_id, email) is
// unique per tenant, compared case-insensitively at query time.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID     string             `bson:"seller_id" json:"seller_id"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
