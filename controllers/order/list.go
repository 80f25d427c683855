package orderControllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsail/storefront-api/models"
	"github.com/shopsail/storefront-api/tenant"
)

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// mapPaymentStatus normalizes a client-supplied payment status string.
func mapPaymentStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case strings.ToLower(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case strings.ToLower(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case strings.ToLower(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case strings.ToLower(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", fmt.Errorf("invalid payment status")
	}
}

// listOrders returns all orders for the configured admin identity, otherwise
// only the caller's own, newest first.
func listOrders(ctx context.Context, db *mongo.Database, callerID string) ([]models.Order, error) {
	filter := bson.M{"user_id": callerID}
	if admin := os.Getenv("ADMIN_SELLER_ID"); admin != "" && callerID == admin {
		filter = bson.M{}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.Collection(models.OrdersCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// GET /orders (seller-id header required)
func GetOrdersHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := strings.TrimSpace(c.GetHeader(tenant.Header))
		if callerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seller id header required"})
			return
		}

		orders, err := listOrders(c.Request.Context(), db, callerID)
		if err != nil {
			log.Println("❌ Failed to list orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// PUT /orders/:orderID/payment-status
// Idempotent update of the payment sub-document keyed by order id.
func UpdatePaymentStatusHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad id"})
			return
		}

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{"payment.status": status}
		if txID := strings.TrimSpace(req.TransactionID); txID != "" {
			set["payment.transaction_id"] = txID
		}

		result, err := db.Collection(models.OrdersCollection).
			UpdateByID(c.Request.Context(), id, bson.M{"$set": set})
		if err != nil {
			log.Println("❌ Failed to update payment status:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}
