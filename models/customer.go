package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerAddress is one shipping address on a customer record. The first
// address added when none exist is marked default.
type CustomerAddress struct {
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	IsDefault  bool   `bson:"is_default" json:"is_default"`
}

// Customer is a buyer record created or matched on first order, keyed within
// a tenant by email or phone.
type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID  string             `bson:"seller_id" json:"seller_id"`
	FirstName string             `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string             `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Addresses []CustomerAddress  `bson:"addresses" json:"addresses"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
