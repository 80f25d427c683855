package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	shopControllers "github.com/shopsail/storefront-api/controllers/shop"
)

func SetupShopRoutes(r *gin.Engine, db *mongo.Database) {
	shops := r.Group("/shops")
	{
		shops.GET("/:slug", shopControllers.GetShopBySlug(db))
		shops.POST("", shopControllers.UpsertShop(db))
	}
}
