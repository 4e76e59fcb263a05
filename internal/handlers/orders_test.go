package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutEmptyCart(t *testing.T) {
	w := postJSON(Checkout, "/api/checkout", `{"items": [], "shipping": {"name": "A", "email": "a@example.com"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty.")
}

func TestCheckoutMissingShipping(t *testing.T) {
	body := `{
		"items": [{"product_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "individual_id": "6ba7b811-9dad-11d1-80b4-00c04fd430c8", "quantity": 1}],
		"shipping": {"name": "", "email": ""}
	}`
	w := postJSON(Checkout, "/api/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Shipping info required.")
}

func TestCheckoutMalformedBody(t *testing.T) {
	w := postJSON(Checkout, "/api/checkout", `{"items": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
