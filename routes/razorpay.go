package routes

import (
	"github.com/gin-gonic/gin"

	razorpayControllers "github.com/shopsail/storefront-api/controllers/razorpay"
)

func SetupRazorpayRoutes(r *gin.Engine) {
	payment := r.Group("/razorpay")
	{
		payment.POST("/create-order", razorpayControllers.CreateOrderHandler)
		payment.POST("/verify-payment", razorpayControllers.VerifyPaymentHandler)
	}
}
