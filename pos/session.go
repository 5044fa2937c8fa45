// Package pos is the point-of-sale front end stripped of its rendering:
// one session owns a cart manager plus clients for the catalog and order
// services, and runs the same flow the sales screen drives by hand.
package pos

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync/atomic"

	"pos-shop/cart"
	"pos-shop/models"
)

var ErrCheckoutInFlight = errors.New("a checkout request is already in progress")

// Session ties a cart to the shop API for the lifetime of one register
// shift. Cart operations are single-threaded by design; only the
// checkout in-flight guard is safe to race on.
type Session struct {
	Cart *cart.Manager

	catalog *CatalogClient
	orders  *OrderClient

	inFlight atomic.Bool
}

func NewSession(baseURL string, httpClient *http.Client) *Session {
	return &Session{
		Cart:    cart.NewManager(),
		catalog: NewCatalogClient(baseURL, httpClient),
		orders:  NewOrderClient(baseURL, httpClient),
	}
}

// LoadCatalog fetches the product list and installs it in the cart
// manager. On failure the previous catalog stays in place.
func (s *Session) LoadCatalog(ctx context.Context) error {
	products, err := s.catalog.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Cart.SetCatalog(products)
	return nil
}

// SubmitCheckout validates the cart and customer, then places the order.
// Validation failures return before any network call. Only one submit may
// be in flight at a time; concurrent calls get ErrCheckoutInFlight.
//
// On success the cart is reset immediately and the catalog is refetched
// once to pick up the new stock levels; a failed refetch is logged but
// does not undo the reset. On a server rejection or transport error the
// cart is left exactly as it was.
func (s *Session) SubmitCheckout(ctx context.Context, customer models.CheckoutCustomerRequest) (*models.CheckoutResponse, error) {
	payload, err := s.Cart.CheckoutPayload(customer)
	if err != nil {
		return nil, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckoutInFlight
	}
	defer s.inFlight.Store(false)

	result, err := s.orders.Checkout(ctx, payload)
	if err != nil {
		return nil, err
	}

	if result.Success {
		s.Cart.Reset()
		if err := s.LoadCatalog(ctx); err != nil {
			log.Printf("catalog refresh after checkout failed: %v", err)
		}
	}

	return result, nil
}
