package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses carried on an order's payment sub-document.
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"
)

// OrderItem is a line item snapshot taken at checkout time.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// OrderTotals carries the checkout amounts as submitted by the client.
type OrderTotals struct {
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
	GST      float64 `bson:"gst" json:"gst"`
	Delivery float64 `bson:"delivery" json:"delivery"`
	Total    float64 `bson:"total" json:"total"`
}

// OrderPayment is the payment sub-document, updated after the gateway
// callback settles.
type OrderPayment struct {
	Method        string `bson:"method" json:"method"`
	Status        string `bson:"status" json:"status"`
	TransactionID string `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
}

// Order is created exactly once per checkout. UserID holds the owning seller
// id; the buyer is referenced through CustomerID.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	CustomerID      primitive.ObjectID `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	CustomerName    string             `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerEmail   string             `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress CustomerAddress    `bson:"shipping_address" json:"shipping_address"`
	Totals          OrderTotals        `bson:"totals" json:"totals"`
	Payment         OrderPayment       `bson:"payment" json:"payment"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}
