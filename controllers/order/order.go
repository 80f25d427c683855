package orderControllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsail/storefront-api/models"
	"github.com/shopsail/storefront-api/tenant"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type ShippingAddressInput struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type PaymentInput struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

type CreateOrderRequest struct {
	Items           []OrderItemInput     `json:"items"`
	Totals          models.OrderTotals   `json:"totals"`
	Payment         PaymentInput         `json:"payment"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerName    string               `json:"customerName"`
}

// -------- Helpers --------

// validateOrder runs every check before any write is attempted.
func validateOrder(req CreateOrderRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("items are required")
	}

	addr := req.ShippingAddress
	required := map[string]string{
		"name":       addr.Name,
		"line1":      addr.Line1,
		"city":       addr.City,
		"state":      addr.State,
		"postalCode": addr.PostalCode,
		"phone":      addr.Phone,
	}
	for _, field := range []string{"name", "line1", "city", "state", "postalCode", "phone"} {
		if strings.TrimSpace(required[field]) == "" {
			return fmt.Errorf("shipping address %s is required", field)
		}
	}
	return nil
}

// normalizeItems snapshots the cart lines: string ids, numeric price and
// quantity, quantity defaulting to 1.
func normalizeItems(inputs []OrderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			ProductID: strings.TrimSpace(in.ProductID),
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  qty,
			Image:     in.Image,
		})
	}
	return items
}

func normalizePayment(in PaymentInput) models.OrderPayment {
	p := models.OrderPayment{
		Method:        strings.TrimSpace(in.Method),
		Status:        strings.TrimSpace(in.Status),
		TransactionID: strings.TrimSpace(in.TransactionID),
	}
	if p.Method == "" {
		p.Method = "unknown"
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	return p
}

// splitName breaks a full name on whitespace: first token is the first name,
// the rest joined is the last name.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// sameAddress compares two addresses by (line1, postalCode, city).
func sameAddress(a, b models.CustomerAddress) bool {
	return strings.EqualFold(strings.TrimSpace(a.Line1), strings.TrimSpace(b.Line1)) &&
		strings.EqualFold(strings.TrimSpace(a.PostalCode), strings.TrimSpace(b.PostalCode)) &&
		strings.EqualFold(strings.TrimSpace(a.City), strings.TrimSpace(b.City))
}

func toCustomerAddress(in ShippingAddressInput) models.CustomerAddress {
	return models.CustomerAddress{
		Name:       strings.TrimSpace(in.Name),
		Line1:      strings.TrimSpace(in.Line1),
		Line2:      strings.TrimSpace(in.Line2),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
		Phone:      strings.TrimSpace(in.Phone),
	}
}

// customerFilter matches an existing customer within the tenant by email or
// phone, whichever keys are present.
func customerFilter(sellerID, email, phone string) bson.M {
	var or []bson.M
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if phone != "" {
		or = append(or, bson.M{"phone": phone})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.M{"seller_id": sellerID, "$or": or}
}

// mergeCustomer fills missing profile fields and appends the new address when
// it differs from every existing one. Non-empty existing values are never
// overwritten. Returns the $set/$push update, or nil when nothing changed.
func mergeCustomer(existing *models.Customer, firstName, lastName, email, phone string, addr models.CustomerAddress) bson.M {
	set := bson.M{}
	if existing.FirstName == "" && firstName != "" {
		set["first_name"] = firstName
		existing.FirstName = firstName
	}
	if existing.LastName == "" && lastName != "" {
		set["last_name"] = lastName
		existing.LastName = lastName
	}
	if existing.Email == "" && email != "" {
		set["email"] = email
		existing.Email = email
	}
	if existing.Phone == "" && phone != "" {
		set["phone"] = phone
		existing.Phone = phone
	}

	update := bson.M{}
	known := false
	for _, a := range existing.Addresses {
		if sameAddress(a, addr) {
			known = true
			break
		}
	}
	if !known {
		addr.IsDefault = len(existing.Addresses) == 0
		existing.Addresses = append(existing.Addresses, addr)
		update["$push"] = bson.M{"addresses": addr}
	}

	if len(set) > 0 || !known {
		set["updated_at"] = time.Now()
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(update) == 0 {
		return nil
	}
	return update
}

// upsertCustomer finds or creates the buyer record for this checkout. There is
// no transaction around the find and the write, so a concurrent duplicate
// checkout can race; single-document writes stay atomic.
func upsertCustomer(ctx context.Context, db *mongo.Database, sellerID string, req CreateOrderRequest) (models.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	addr := toCustomerAddress(req.ShippingAddress)
	phone := addr.Phone

	fullName := strings.TrimSpace(req.CustomerName)
	if fullName == "" {
		fullName = addr.Name
	}
	firstName, lastName := splitName(fullName)

	coll := db.Collection(models.CustomersCollection)

	filter := customerFilter(sellerID, email, phone)
	if filter != nil {
		var existing models.Customer
		err := coll.FindOne(ctx, filter).Decode(&existing)
		if err == nil {
			if update := mergeCustomer(&existing, firstName, lastName, email, phone, addr); update != nil {
				if _, err := coll.UpdateByID(ctx, existing.ID, update); err != nil {
					return models.Customer{}, fmt.Errorf("failed to update customer: %w", err)
				}
			}
			return existing, nil
		}
		if err != mongo.ErrNoDocuments {
			return models.Customer{}, fmt.Errorf("failed to look up customer: %w", err)
		}
	}

	now := time.Now()
	addr.IsDefault = true
	customer := models.Customer{
		ID:        primitive.NewObjectID(),
		SellerID:  sellerID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Addresses: []models.CustomerAddress{addr},
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := coll.InsertOne(ctx, customer); err != nil {
		return models.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// -------- Handlers --------

type createOrderResponse struct {
	OrderID string `json:"orderId"`
	models.Order
}

// POST /orders (seller-id header required)
func CreateOrderHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := strings.TrimSpace(c.GetHeader(tenant.Header))
		if sellerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seller id header required"})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validateOrder(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		customer, err := upsertCustomer(ctx, db, sellerID, req)
		if err != nil {
			log.Println("❌ Customer upsert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		customerName := strings.TrimSpace(req.CustomerName)
		if customerName == "" {
			customerName = strings.TrimSpace(req.ShippingAddress.Name)
		}

		order := models.Order{
			ID:              primitive.NewObjectID(),
			UserID:          sellerID,
			CustomerID:      customer.ID,
			CustomerName:    customerName,
			CustomerEmail:   strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
			Items:           normalizeItems(req.Items),
			ShippingAddress: toCustomerAddress(req.ShippingAddress),
			Totals:          req.Totals,
			Payment:         normalizePayment(req.Payment),
			CreatedAt:       time.Now(),
		}

		if _, err := db.Collection(models.OrdersCollection).InsertOne(ctx, order); err != nil {
			log.Println("❌ Failed to create order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		// The dashboard feed must never delay the checkout response
		go broadcastNewOrder(order)

		c.JSON(http.StatusCreated, createOrderResponse{
			OrderID: order.ID.Hex(),
			Order:   order,
		})
	}
}
