package catalogControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsail/storefront-api/models"
	"github.com/shopsail/storefront-api/tenant"
)

// GET /offers?shop= (or seller-id header)
// Returns the seller's currently running offers, newest first.
func GetOffers(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, err := tenant.FromRequest(c, db)
		if err != nil {
			switch {
			case errors.Is(err, tenant.ErrShopNotFound):
				c.JSON(http.StatusOK, []models.Offer{})
			case errors.Is(err, tenant.ErrMissingTenant):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				log.Println("❌ Failed to resolve seller:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			}
			return
		}

		now := time.Now()
		filter := bson.M{
			"seller_id": sellerID,
			"status":    models.StatusActive,
			"$and": []bson.M{
				{"$or": []bson.M{
					{"starts_at": bson.M{"$exists": false}},
					{"starts_at": nil},
					{"starts_at": bson.M{"$lte": now}},
				}},
				{"$or": []bson.M{
					{"ends_at": bson.M{"$exists": false}},
					{"ends_at": nil},
					{"ends_at": bson.M{"$gte": now}},
				}},
			},
		}

		ctx := c.Request.Context()
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := db.Collection(models.OffersCollection).Find(ctx, filter, opts)
		if err != nil {
			log.Println("❌ Failed to fetch offers:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		defer cursor.Close(ctx)

		offers := []models.Offer{}
		if err := cursor.All(ctx, &offers); err != nil {
			log.Println("❌ Failed to decode offers:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, offers)
	}
}
