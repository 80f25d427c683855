package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discount methods and value types.
const (
	DiscountMethodCode = "code"
	DiscountMethodAuto = "auto"

	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"

	StatusActive = "Active"
)

// Discount is configured by the seller's admin system. Only auto discounts
// inside their date window participate in catalog price computation. An empty
// ProductIDs list means the discount covers the whole catalog.
type Discount struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID   string             `bson:"seller_id" json:"seller_id"`
	Method     string             `bson:"method" json:"method"`
	Code       string             `bson:"code,omitempty" json:"code,omitempty"`
	Type       string             `bson:"type" json:"type"`
	Amount     float64            `bson:"amount" json:"amount"`
	Status     string             `bson:"status" json:"status"`
	StartsAt   *time.Time         `bson:"starts_at,omitempty" json:"starts_at,omitempty"`
	EndsAt     *time.Time         `bson:"ends_at,omitempty" json:"ends_at,omitempty"`
	ProductIDs []string           `bson:"product_ids,omitempty" json:"product_ids,omitempty"`
}
