package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsail/storefront-api/models"
)

// Header carries the acting seller identity when no shop slug is supplied.
// It is trusted as-is; there is no cryptographic binding.
const Header = "X-Seller-ID"

var (
	// ErrMissingTenant means the request supplied neither a shop slug nor a
	// seller-id header.
	ErrMissingTenant = errors.New("shop or seller id required")
	// ErrShopNotFound means the supplied slug does not resolve to a shop.
	ErrShopNotFound = errors.New("shop not found")
)

// ResolveSellerID maps a shop slug or a caller-supplied seller id to the
// owning seller. Every tenant-scoped handler must go through this before
// touching tenant data.
func ResolveSellerID(ctx context.Context, db *mongo.Database, shopSlug, headerSellerID string) (string, error) {
	if slug := strings.ToLower(strings.TrimSpace(shopSlug)); slug != "" {
		var shop models.Shop
		err := db.Collection(models.ShopsCollection).
			FindOne(ctx, bson.M{"slug": slug}).
			Decode(&shop)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return "", ErrShopNotFound
			}
			return "", fmt.Errorf("failed to look up shop %q: %w", slug, err)
		}
		return shop.SellerID, nil
	}

	if id := strings.TrimSpace(headerSellerID); id != "" {
		return id, nil
	}

	return "", ErrMissingTenant
}

// FromRequest resolves the seller for a gin request, reading the "shop" query
// parameter first and the identity header second.
func FromRequest(c *gin.Context, db *mongo.Database) (string, error) {
	return ResolveSellerID(c.Request.Context(), db, c.Query("shop"), c.GetHeader(Header))
}
