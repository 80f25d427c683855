package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	authControllers "github.com/shopsail/storefront-api/controllers/auth"
	"github.com/shopsail/storefront-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *mongo.Database) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))

		// JWT-protected profile lookup
		authGroup.GET("/me", middleware.ValidateToken, authControllers.Me(db))
	}
}
