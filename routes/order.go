package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	orderControllers "github.com/shopsail/storefront-api/controllers/order"
	"github.com/shopsail/storefront-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *mongo.Database) {
	orders := r.Group("/orders")
	{
		// Create a new order (upserts the customer record)
		orders.POST("", orderControllers.CreateOrderHandler(db))

		// Fetch orders for the caller (all tenants for the admin identity)
		orders.GET("", orderControllers.GetOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Update payment status after the gateway settles
		orders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

		// Dashboard export, API-key protected
		orders.GET("/export-excel", middleware.ValidateAPIKey, orderControllers.ExportOrdersToExcel(db))
	}
}
