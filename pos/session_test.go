package pos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-shop/cart"
	"pos-shop/models"
)

type fakeShop struct {
	mux           *http.ServeMux
	products      []models.CatalogProduct
	checkout      func(w http.ResponseWriter, r *http.Request)
	productCalls  atomic.Int32
	checkoutCalls atomic.Int32
}

func newFakeShop() *fakeShop {
	f := &fakeShop{
		products: []models.CatalogProduct{
			{ID: 1, Code: "P001", Name: "Beer Lao", Price: 1000, Stock: 5},
			{ID: 2, Code: "P002", Name: "Sticky Rice", Price: 500, Stock: 2},
		},
	}
	f.mux = http.NewServeMux()
	f.mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		f.productCalls.Add(1)
		json.NewEncoder(w).Encode(f.products)
	})
	f.mux.HandleFunc("/api/checkout", func(w http.ResponseWriter, r *http.Request) {
		f.checkoutCalls.Add(1)
		if f.checkout != nil {
			f.checkout(w, r)
			return
		}
		json.NewEncoder(w).Encode(models.CheckoutResponse{Success: true, OrderID: 42})
	})
	return f
}

func newTestSession(t *testing.T) (*Session, *fakeShop) {
	t.Helper()
	shop := newFakeShop()
	srv := httptest.NewServer(shop.mux)
	t.Cleanup(srv.Close)

	s := NewSession(srv.URL, srv.Client())
	require.NoError(t, s.LoadCatalog(context.Background()))
	return s, shop
}

func TestLoadCatalogPopulatesCart(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.Cart.AddItem(1))
	assert.Equal(t, 1000.0, s.Cart.Total())
}

func TestLoadCatalogTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	s := NewSession(srv.URL, srv.Client())
	err := s.LoadCatalog(context.Background())
	assert.Error(t, err)
}

func TestSubmitCheckoutSuccessResetsCartAndRefetchesOnce(t *testing.T) {
	s, shop := newTestSession(t)
	require.NoError(t, s.Cart.AddItem(1))

	fetchesBefore := shop.productCalls.Load()

	result, err := s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{Name: "Noy"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 42, result.OrderID)
	assert.Equal(t, 0, s.Cart.Len())
	assert.Equal(t, fetchesBefore+1, shop.productCalls.Load())
}

func TestSubmitCheckoutEmptyNameMakesNoNetworkCall(t *testing.T) {
	s, shop := newTestSession(t)
	require.NoError(t, s.Cart.AddItem(1))

	_, err := s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{})
	assert.ErrorIs(t, err, cart.ErrCustomerName)
	assert.Equal(t, int32(0), shop.checkoutCalls.Load())
	assert.Equal(t, 1, s.Cart.Len())
}

func TestSubmitCheckoutEmptyCartMakesNoNetworkCall(t *testing.T) {
	s, shop := newTestSession(t)

	_, err := s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{Name: "Noy"})
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Equal(t, int32(0), shop.checkoutCalls.Load())
}

func TestSubmitCheckoutServerRejectionLeavesCartUntouched(t *testing.T) {
	s, shop := newTestSession(t)
	shop.checkout = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.CheckoutResponse{Success: false, Message: "Product Beer Lao out of stock"})
	}
	require.NoError(t, s.Cart.AddItem(1))

	fetchesBefore := shop.productCalls.Load()

	result, err := s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{Name: "Noy"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Product Beer Lao out of stock", result.Message)
	assert.Equal(t, 1, s.Cart.Len())
	assert.Equal(t, fetchesBefore, shop.productCalls.Load())
}

func TestSubmitCheckoutTransportErrorLeavesCartUntouched(t *testing.T) {
	shop := newFakeShop()
	srv := httptest.NewServer(shop.mux)

	s := NewSession(srv.URL, srv.Client())
	require.NoError(t, s.LoadCatalog(context.Background()))
	require.NoError(t, s.Cart.AddItem(1))

	srv.Close()

	_, err := s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{Name: "Noy"})
	assert.Error(t, err)
	assert.Equal(t, 1, s.Cart.Len())
}

func TestSubmitCheckoutRejectsConcurrentSubmit(t *testing.T) {
	s, shop := newTestSession(t)

	release := make(chan struct{})
	entered := make(chan struct{})
	shop.checkout = func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		json.NewEncoder(w).Encode(models.CheckoutResponse{Success: true, OrderID: 7})
	}

	require.NoError(t, s.Cart.AddItem(1))

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{Name: "Noy"})
		firstDone <- err
	}()

	<-entered
	_, err := s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{Name: "Noy"})
	assert.ErrorIs(t, err, ErrCheckoutInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	// guard released: another submit goes through once the cart has items
	shop.checkout = nil // the blocking handler above would close(entered) twice and panic
	require.NoError(t, s.Cart.AddItem(1))
	_, err = s.SubmitCheckout(context.Background(), models.CheckoutCustomerRequest{Name: "Noy"})
	assert.NoError(t, err)
}
