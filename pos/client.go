package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pos-shop/models"
)

// CatalogClient reads the product catalog from the shop API.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCatalogClient(baseURL string, httpClient *http.Client) *CatalogClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &CatalogClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *CatalogClient) Fetch(ctx context.Context) ([]models.CatalogProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}

	var products []models.CatalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("fetch products: decode response: %w", err)
	}

	return products, nil
}

// OrderClient submits checkout payloads to the shop API.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrderClient(baseURL string, httpClient *http.Client) *OrderClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &OrderClient{baseURL: baseURL, httpClient: httpClient}
}

// Checkout posts the payload and decodes the server's verdict. A reachable
// server that refuses the order (success=false, any status) is not a
// transport error: the result carries the server's message verbatim.
func (c *OrderClient) Checkout(ctx context.Context, payload *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("checkout: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	defer resp.Body.Close()

	var result models.CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("checkout: decode response: %w", err)
	}

	return &result, nil
}
