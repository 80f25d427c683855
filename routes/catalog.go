package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	catalogControllers "github.com/shopsail/storefront-api/controllers/catalog"
)

func SetupCatalogRoutes(r *gin.Engine, db *mongo.Database) {
	r.GET("/products", catalogControllers.GetProducts(db))
	r.GET("/products/:id", catalogControllers.GetProductByID(db))
	r.GET("/offers", catalogControllers.GetOffers(db))
}
