package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-shop/models"
)

// Validation runs before any storage access, so these cases exercise the
// handler with no database behind it.
func postCheckout(t *testing.T, body string) (*httptest.ResponseRecorder, models.CheckoutResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/checkout", NewCheckoutController().Checkout)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp models.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCheckoutRejectsMalformedBody(t *testing.T) {
	w, resp := postCheckout(t, "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	w, resp := postCheckout(t, `{"cart": [], "customer": {"name": "Noy"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Cart is empty", resp.Message)
}

func TestCheckoutRejectsBlankCustomerName(t *testing.T) {
	w, resp := postCheckout(t, `{"cart": [{"productId": 1, "quantity": 1}], "customer": {"name": "   "}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Customer name is required", resp.Message)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	w, resp := postCheckout(t, `{"cart": [{"productId": 1, "quantity": 1}], "customer": {"name": "Noy", "paymentMethod": "Barter"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid payment method", resp.Message)
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	w, resp := postCheckout(t, `{"cart": [{"productId": 1, "quantity": 0}], "customer": {"name": "Noy"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Item quantity must be positive", resp.Message)
}
