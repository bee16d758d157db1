// Package api is the typed client for the storefront REST backend.
// Every mutating endpoint answers with a technicalId envelope; reads
// answer with the full record.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Filters are passed through to the product listing endpoint as query
// parameters; nil/empty fields are omitted.
type Filters struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     *int
	PageSize *int
}

func (f Filters) query() string {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Page != nil {
		params.Set("page", strconv.Itoa(*f.Page))
	}
	if f.PageSize != nil {
		params.Set("pageSize", strconv.Itoa(*f.PageSize))
	}
	return params.Encode()
}

func (c *Client) Products(ctx context.Context, filters Filters) ([]domain.ProductSlim, error) {
	endpoint := "/ui/products"
	if q := filters.query(); q != "" {
		endpoint += "?" + q
	}

	var products []domain.ProductSlim
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductBySKU(ctx context.Context, sku string) (*domain.ProductFull, error) {
	var product domain.ProductFull
	err := c.do(ctx, http.MethodGet, "/ui/products/"+url.PathEscape(sku), nil, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateOrReturnCart asks the backend for a cart id. The call is
// idempotent on the backend side: it may hand back an existing open cart
// instead of minting a new one.
func (c *Client) CreateOrReturnCart(ctx context.Context) (string, error) {
	body := map[string]string{"action": "createOrReturn"}
	return c.technicalID(ctx, http.MethodPost, "/ui/cart", body)
}

func (c *Client) Cart(ctx context.Context, id string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.do(ctx, http.MethodGet, "/ui/cart/"+url.PathEscape(id), nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddLine(ctx context.Context, cartID, sku string, qty int) (string, error) {
	body := domain.AddLineRequest{SKU: sku, Quantity: qty}
	return c.technicalID(ctx, http.MethodPost, "/ui/cart/"+url.PathEscape(cartID)+"/lines", body)
}

// UpdateLine changes the quantity of an existing line; qty 0 removes it.
func (c *Client) UpdateLine(ctx context.Context, cartID, sku string, qty int) (string, error) {
	body := domain.AddLineRequest{SKU: sku, Quantity: qty}
	return c.technicalID(ctx, http.MethodPatch, "/ui/cart/"+url.PathEscape(cartID)+"/lines", body)
}

func (c *Client) OpenCheckout(ctx context.Context, cartID string) (string, error) {
	return c.technicalID(ctx, http.MethodPost, "/ui/cart/"+url.PathEscape(cartID)+"/open-checkout", nil)
}

func (c *Client) SubmitContact(ctx context.Context, cartID string, contact domain.GuestContact) (string, error) {
	body := domain.CheckoutRequest{GuestContact: contact}
	return c.technicalID(ctx, http.MethodPost, "/ui/checkout/"+url.PathEscape(cartID), body)
}

func (c *Client) StartPayment(ctx context.Context, cartID string, amount float64) (string, error) {
	body := domain.StartPaymentRequest{
		CartID:   cartID,
		Amount:   amount,
		Provider: domain.DefaultProvider,
		Status:   domain.PaymentStatusInitiated,
	}
	return c.technicalID(ctx, http.MethodPost, "/ui/payment/start", body)
}

func (c *Client) Payment(ctx context.Context, id string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := c.do(ctx, http.MethodGet, "/ui/payment/"+url.PathEscape(id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) CreateOrder(ctx context.Context, paymentID, cartID string) (string, error) {
	body := domain.CreateOrderRequest{PaymentID: paymentID, CartID: cartID}
	return c.technicalID(ctx, http.MethodPost, "/ui/order/create", body)
}

func (c *Client) Order(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/ui/order/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) technicalID(ctx context.Context, method, endpoint string, body interface{}) (string, error) {
	var resp domain.TechnicalIDResponse
	if err := c.do(ctx, method, endpoint, body, &resp); err != nil {
		return "", err
	}
	return resp.TechnicalID, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if e2 := json.NewDecoder(resp.Body).Decode(out); e2 != nil {
		return fmt.Errorf("decode response: %w", e2)
	}
	return nil
}
