package shopControllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsail/storefront-api/models"
	"github.com/shopsail/storefront-api/tenant"
)

type UpsertShopRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Cover       string `json:"cover"`
	Status      string `json:"status"`
}

// GET /shops/:slug
func GetShopBySlug(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
			return
		}

		var shop models.Shop
		err := db.Collection(models.ShopsCollection).
			FindOne(c.Request.Context(), bson.M{"slug": slug}).
			Decode(&shop)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
				return
			}
			log.Println("❌ Failed to fetch shop:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, shop)
	}
}

// POST /shops
// Upserts a shop by (seller id, slug); the seller id comes from the identity
// header.
func UpsertShop(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := strings.TrimSpace(c.GetHeader(tenant.Header))
		if sellerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seller id header required"})
			return
		}

		var req UpsertShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		slug := strings.ToLower(strings.TrimSpace(req.Slug))
		status := req.Status
		if status == "" {
			status = models.StatusActive
		}

		now := time.Now()
		filter := bson.M{"seller_id": sellerID, "slug": slug}
		update := bson.M{
			"$set": bson.M{
				"name":        req.Name,
				"description": req.Description,
				"logo":        req.Logo,
				"cover":       req.Cover,
				"status":      status,
				"updated_at":  now,
			},
			"$setOnInsert": bson.M{
				"seller_id":  sellerID,
				"slug":       slug,
				"created_at": now,
			},
		}
		opts := options.Update().SetUpsert(true)

		coll := db.Collection(models.ShopsCollection)
		if _, err := coll.UpdateOne(c.Request.Context(), filter, update, opts); err != nil {
			log.Println("❌ Failed to upsert shop:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		var shop models.Shop
		if err := coll.FindOne(c.Request.Context(), filter).Decode(&shop); err != nil {
			log.Println("❌ Failed to fetch upserted shop:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, shop)
	}
}
