package catalogControllers

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsail/storefront-api/models"
)

// DiscountActive reports whether a discount participates in automatic price
// computation at the given instant. Both window bounds are inclusive.
func DiscountActive(d models.Discount, now time.Time) bool {
	if d.Method != models.DiscountMethodAuto || d.Status != models.StatusActive {
		return false
	}
	if d.StartsAt != nil && now.Before(*d.StartsAt) {
		return false
	}
	if d.EndsAt != nil && now.After(*d.EndsAt) {
		return false
	}
	return true
}

// trialPrice applies a single discount to a price: percentage or fixed,
// floored at zero, rounded to 2 decimals. NaN means the discount type is
// unknown and the candidate is skipped.
func trialPrice(price float64, d models.Discount) float64 {
	var p float64
	switch d.Type {
	case models.DiscountTypePercentage:
		p = price * (1 - d.Amount/100)
	case models.DiscountTypeFixed:
		p = price - d.Amount
	default:
		return math.NaN()
	}
	if p < 0 {
		p = 0
	}
	return math.Round(p*100) / 100
}

// appliesTo reports whether a discount covers the product: an empty product
// list means the whole catalog.
func appliesTo(d models.Discount, productID string) bool {
	if len(d.ProductIDs) == 0 {
		return true
	}
	for _, id := range d.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// BestDiscount picks the candidate yielding the lowest final price for the
// buyer; ties keep the first-seen candidate. Returns nil when no candidate
// produces a valid price.
func BestDiscount(product models.Product, discounts []models.Discount) (float64, *models.Discount) {
	best := math.Inf(1)
	var bestDiscount *models.Discount

	for i := range discounts {
		d := &discounts[i]
		if !appliesTo(*d, product.ID.Hex()) {
			continue
		}
		p := trialPrice(product.Price, *d)
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		if p < best {
			best = p
			bestDiscount = d
		}
	}

	if bestDiscount == nil {
		return 0, nil
	}
	return best, bestDiscount
}

// activeAutoDiscounts loads the seller's auto discounts whose date window
// contains now.
func activeAutoDiscounts(ctx context.Context, db *mongo.Database, sellerID string, now time.Time) ([]models.Discount, error) {
	cursor, err := db.Collection(models.DiscountsCollection).Find(ctx, bson.M{
		"seller_id": sellerID,
		"method":    models.DiscountMethodAuto,
		"status":    models.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discounts: %w", err)
	}
	defer cursor.Close(ctx)

	var all []models.Discount
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("failed to decode discounts: %w", err)
	}

	// Date windows are checked here rather than in the query so the inclusive
	// boundary semantics live in one place.
	active := all[:0]
	for _, d := range all {
		if DiscountActive(d, now) {
			active = append(active, d)
		}
	}
	return active, nil
}

// decoratedProduct is a product plus the discount fields added only when a
// discount applies.
type decoratedProduct struct {
	models.Product
	DiscountedPrice *float64         `json:"discountedPrice,omitempty"`
	Discount        *models.Discount `json:"discount,omitempty"`
}

func decorate(p models.Product, discounts []models.Discount) decoratedProduct {
	out := decoratedProduct{Product: p}
	if price, d := BestDiscount(p, discounts); d != nil {
		out.DiscountedPrice = &price
		out.Discount = d
	}
	return out
}
