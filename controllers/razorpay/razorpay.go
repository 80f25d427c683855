package razorpayControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultAPIURL = "https://api.razorpay.com/v1"

// errConfigMissing distinguishes our own misconfiguration (500) from a
// gateway failure (502).
var errConfigMissing = errors.New("razorpay configuration missing")

// getRazorpayConfig reads the gateway credentials; a missing pair is a
// configuration fault reported to the caller, not a crash.
func getRazorpayConfig() (keyID, keySecret, apiURL string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	apiURL = os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	if keyID == "" || keySecret == "" {
		return "", "", "", errConfigMissing
	}
	return keyID, keySecret, apiURL, nil
}

// CreateGatewayOrder creates an order on the gateway and returns its id along
// with the raw gateway response. Amount is in minor currency units.
func CreateGatewayOrder(amount int64, currency, receipt string, notes map[string]string) (string, map[string]interface{}, error) {
	keyID, keySecret, apiURL, err := getRazorpayConfig()
	if err != nil {
		return "", nil, err
	}

	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		payload["notes"] = notes
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", apiURL+"/orders", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return "", nil, fmt.Errorf("failed to parse Razorpay response: %v", err)
	}

	orderID, _ := data["id"].(string)
	if orderID == "" {
		return "", nil, fmt.Errorf("razorpay returned empty order id")
	}

	return orderID, data, nil
}

// VerifySignature checks the payment callback signature:
// hex(HMAC-SHA256(secret, orderId + "|" + paymentId)).
func VerifySignature(secret, orderID, paymentID, providedSignature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(providedSignature))
}

// -------- Handlers --------

type CreateOrderRequest struct {
	Amount   *float64          `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// POST /razorpay/create-order
func CreateOrderHandler(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Amount == nil || math.IsNaN(*req.Amount) || math.IsInf(*req.Amount, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "valid amount is required"})
		return
	}
	amount := int64(math.Round(*req.Amount))

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + uuid.NewString()
	}

	orderID, data, err := CreateGatewayOrder(amount, currency, receipt, req.Notes)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, errConfigMissing) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"order_id": orderID,
		"data":     data,
	})
}

// POST /razorpay/verify-payment
// A bad signature is a validation outcome, not a server fault.
func VerifyPaymentHandler(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "razorpay configuration missing"})
		return
	}

	if !VerifySignature(secret, req.OrderID, req.PaymentID, req.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "verified": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "verified": true})
}
