package orderControllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopsail/storefront-api/models"
)

func validRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Items: []OrderItemInput{{ProductID: "p1", Name: "Widget", Price: 50, Quantity: 2}},
		Totals: models.OrderTotals{
			Subtotal: 100, GST: 5, Delivery: 30, Total: 135,
		},
		ShippingAddress: ShippingAddressInput{
			Name: "Asha Rao", Line1: "12 MG Road", City: "Bengaluru",
			State: "KA", PostalCode: "560001", Phone: "9876543210",
		},
		CustomerEmail: "asha@example.com",
		CustomerName:  "Asha Rao",
	}
}

func TestValidateOrder(t *testing.T) {
	assert.NoError(t, validateOrder(validRequest()))

	empty := validRequest()
	empty.Items = nil
	assert.EqualError(t, validateOrder(empty), "items are required")

	for _, field := range []string{"name", "line1", "city", "state", "postalCode", "phone"} {
		req := validRequest()
		switch field {
		case "name":
			req.ShippingAddress.Name = "  "
		case "line1":
			req.ShippingAddress.Line1 = ""
		case "city":
			req.ShippingAddress.City = ""
		case "state":
			req.ShippingAddress.State = ""
		case "postalCode":
			req.ShippingAddress.PostalCode = ""
		case "phone":
			req.ShippingAddress.Phone = ""
		}
		err := validateOrder(req)
		require.Error(t, err, field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestNormalizeItems(t *testing.T) {
	items := normalizeItems([]OrderItemInput{
		{ProductID: " p1 ", Name: "Widget", Price: 50, Quantity: 2},
		{ProductID: "p2", Name: "Gadget", Price: 10},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 100.0, items[0].Price*float64(items[0].Quantity))
	assert.Equal(t, 1, items[1].Quantity, "unspecified quantity defaults to 1")
}

func TestNormalizePayment(t *testing.T) {
	p := normalizePayment(PaymentInput{})
	assert.Equal(t, "unknown", p.Method)
	assert.Equal(t, models.PaymentStatusPending, p.Status)
	assert.Empty(t, p.TransactionID)

	p = normalizePayment(PaymentInput{Method: "upi", Status: "Paid", TransactionID: "tx1"})
	assert.Equal(t, "upi", p.Method)
	assert.Equal(t, "Paid", p.Status)
	assert.Equal(t, "tx1", p.TransactionID)
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Asha Rao")
	assert.Equal(t, "Asha", first)
	assert.Equal(t, "Rao", last)

	first, last = splitName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)

	first, last = splitName("A B C D")
	assert.Equal(t, "A", first)
	assert.Equal(t, "B C D", last)

	first, last = splitName("   ")
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestSameAddress(t *testing.T) {
	a := models.CustomerAddress{Line1: "12 MG Road", PostalCode: "560001", City: "Bengaluru"}

	assert.True(t, sameAddress(a, models.CustomerAddress{
		Line1: " 12 mg road ", PostalCode: "560001", City: "BENGALURU", State: "KA",
	}))
	assert.False(t, sameAddress(a, models.CustomerAddress{
		Line1: "12 MG Road", PostalCode: "560002", City: "Bengaluru",
	}))
}

func TestCustomerFilter(t *testing.T) {
	filter := customerFilter("s1", "a@x.com", "123")
	require.NotNil(t, filter)
	assert.Equal(t, "s1", filter["seller_id"])
	assert.Len(t, filter["$or"], 2)

	filter = customerFilter("s1", "", "123")
	require.NotNil(t, filter)
	assert.Len(t, filter["$or"], 1)

	assert.Nil(t, customerFilter("s1", "", ""))
}

func TestMergeCustomerFillsMissingOnly(t *testing.T) {
	existing := models.Customer{
		ID:        primitive.NewObjectID(),
		FirstName: "Asha",
		Email:     "asha@example.com",
		Addresses: []models.CustomerAddress{{Line1: "12 MG Road", PostalCode: "560001", City: "Bengaluru", IsDefault: true}},
	}
	newAddr := models.CustomerAddress{Line1: "7 Park St", PostalCode: "700016", City: "Kolkata"}

	update := mergeCustomer(&existing, "Other", "Rao", "other@example.com", "123", newAddr)
	require.NotNil(t, update)

	set := update["$set"].(bson.M)
	assert.Equal(t, "Rao", set["last_name"])
	assert.Equal(t, "123", set["phone"])
	assert.NotContains(t, set, "first_name", "existing first name is never overwritten")
	assert.NotContains(t, set, "email")

	push := update["$push"].(bson.M)
	appended := push["addresses"].(models.CustomerAddress)
	assert.False(t, appended.IsDefault, "default only when no address existed")
	assert.Len(t, existing.Addresses, 2)
}

func TestMergeCustomerKnownAddressNoChange(t *testing.T) {
	existing := models.Customer{
		ID:        primitive.NewObjectID(),
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Phone:     "123",
		Addresses: []models.CustomerAddress{{Line1: "12 MG Road", PostalCode: "560001", City: "Bengaluru", IsDefault: true}},
	}
	same := models.CustomerAddress{Line1: "12 mg road", PostalCode: "560001", City: "bengaluru"}

	update := mergeCustomer(&existing, "Asha", "Rao", "asha@example.com", "123", same)
	assert.Nil(t, update, "a repeat checkout with the same address is a no-op")
	assert.Len(t, existing.Addresses, 1)
}

func TestMergeCustomerFirstAddressBecomesDefault(t *testing.T) {
	existing := models.Customer{ID: primitive.NewObjectID(), Email: "a@x.com"}
	addr := models.CustomerAddress{Line1: "12 MG Road", PostalCode: "560001", City: "Bengaluru"}

	update := mergeCustomer(&existing, "", "", "a@x.com", "", addr)
	require.NotNil(t, update)

	push := update["$push"].(bson.M)
	appended := push["addresses"].(models.CustomerAddress)
	assert.True(t, appended.IsDefault)
}

func TestCreateOrderResponseAliases(t *testing.T) {
	order := models.Order{
		ID:     primitive.NewObjectID(),
		UserID: "s1",
		Items:  []models.OrderItem{{ProductID: "p1", Price: 50, Quantity: 2}},
		Totals: models.OrderTotals{Subtotal: 100, GST: 5, Delivery: 30, Total: 135},
	}

	data, err := json.Marshal(createOrderResponse{OrderID: order.ID.Hex(), Order: order})
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, order.ID.Hex(), body["orderId"])
	assert.Equal(t, order.ID.Hex(), body["id"], "orderId and id alias the same identifier")

	totals := body["totals"].(map[string]interface{})
	assert.Equal(t, 135.0, totals["total"])
}

func TestMapPaymentStatus(t *testing.T) {
	for in, want := range map[string]string{
		"paid":     models.PaymentStatusPaid,
		"PENDING":  models.PaymentStatusPending,
		"Failed":   models.PaymentStatusFailed,
		"refunded": models.PaymentStatusRefunded,
	} {
		got, err := mapPaymentStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := mapPaymentStatus("settled")
	assert.Error(t, err)
}
