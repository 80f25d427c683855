package catalogControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsail/storefront-api/models"
	"github.com/shopsail/storefront-api/tenant"
)

// GET /products?shop= (or seller-id header)
// An unknown shop slug degrades to an empty list; only a missing tenant is an
// error.
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, err := tenant.FromRequest(c, db)
		if err != nil {
			switch {
			case errors.Is(err, tenant.ErrShopNotFound):
				c.JSON(http.StatusOK, []decoratedProduct{})
			case errors.Is(err, tenant.ErrMissingTenant):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				log.Println("❌ Failed to resolve seller:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			}
			return
		}

		ctx := c.Request.Context()
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := db.Collection(models.ProductsCollection).
			Find(ctx, bson.M{"seller_id": sellerID}, opts)
		if err != nil {
			log.Println("❌ Failed to fetch products:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			log.Println("❌ Failed to decode products:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		discounts, err := activeAutoDiscounts(ctx, db, sellerID, time.Now())
		if err != nil {
			log.Println("❌ Failed to fetch discounts:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		decorated := make([]decoratedProduct, 0, len(products))
		for _, p := range products {
			decorated = append(decorated, decorate(p, discounts))
		}

		c.JSON(http.StatusOK, decorated)
	}
}

// GET /products/:id?shop= (or seller-id header)
// A product owned by another seller is indistinguishable from a missing one.
func GetProductByID(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, err := tenant.FromRequest(c, db)
		if err != nil {
			switch {
			case errors.Is(err, tenant.ErrShopNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
			case errors.Is(err, tenant.ErrMissingTenant):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				log.Println("❌ Failed to resolve seller:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			}
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad id"})
			return
		}

		ctx := c.Request.Context()
		var product models.Product
		err = db.Collection(models.ProductsCollection).
			FindOne(ctx, bson.M{"_id": id, "seller_id": sellerID}).
			Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Println("❌ Failed to fetch product:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		discounts, err := activeAutoDiscounts(ctx, db, sellerID, time.Now())
		if err != nil {
			log.Println("❌ Failed to fetch discounts:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, decorate(product, discounts))
	}
}
