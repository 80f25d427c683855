package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *mongo.Database) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	SetupShopRoutes(r, db)

	SetupAuthRoutes(r, db)

	SetupCatalogRoutes(r, db)

	SetupOrderRoutes(r, db)

	// razorpay payment routes
	SetupRazorpayRoutes(r)
}
