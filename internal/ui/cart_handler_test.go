package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CartServiceMock implements CartService.
type CartServiceMock struct {
	Cart       *domain.Cart
	ID         string
	EnsureErr  error
	AddErr     error
	UpdateErr  error
	AddedSKU   string
	AddedQty   int
	UpdatedSKU string
	UpdatedQty int
}

func (m *CartServiceMock) EnsureCart(_ context.Context) (string, error) {
	if m.EnsureErr != nil {
		return "", m.EnsureErr
	}
	return m.ID, nil
}

func (m *CartServiceMock) AddLine(_ context.Context, sku string, qty int) error {
	m.AddedSKU = sku
	m.AddedQty = qty
	return m.AddErr
}

func (m *CartServiceMock) SetLineQuantity(_ context.Context, sku string, qty int) error {
	m.UpdatedSKU = sku
	m.UpdatedQty = qty
	return m.UpdateErr
}

func (m *CartServiceMock) Current() *domain.Cart {
	return m.Cart
}

func (m *CartServiceMock) CartID() string {
	return m.ID
}

func testCart() *domain.Cart {
	return &domain.Cart{
		ID:         "cart-1",
		Lines:      []domain.LineItem{{SKU: "A1", Name: "Widget", UnitPrice: 10.0, Quantity: 2}},
		TotalItems: 2,
		GrandTotal: 20.0,
	}
}

func TestCartGet_Success(t *testing.T) {
	mock := &CartServiceMock{Cart: testCart(), ID: "cart-1"}
	handler := NewCartHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/cart", nil)

	handler.Get(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response domain.Cart
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "cart-1", response.ID)
	assert.Equal(t, 20.0, response.GrandTotal)
}

func TestCartAddLine_Success(t *testing.T) {
	mock := &CartServiceMock{Cart: testCart(), ID: "cart-1"}
	handler := NewCartHandler(mock, 5*time.Second)

	body := bytes.NewBufferString(`{"sku":"A1","qty":2}`)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/cart/lines", body)

	handler.AddLine(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "A1", mock.AddedSKU)
	assert.Equal(t, 2, mock.AddedQty)
}

func TestCartAddLine_DefaultsQuantityToOne(t *testing.T) {
	mock := &CartServiceMock{Cart: testCart(), ID: "cart-1"}
	handler := NewCartHandler(mock, 5*time.Second)

	body := bytes.NewBufferString(`{"sku":"A1"}`)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/cart/lines", body)

	handler.AddLine(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, mock.AddedQty)
}

func TestCartAddLine_MissingSKU(t *testing.T) {
	handler := NewCartHandler(&CartServiceMock{}, 5*time.Second)

	body := bytes.NewBufferString(`{"qty":2}`)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/cart/lines", body)

	handler.AddLine(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartUpdateLine_ZeroQuantityAllowed(t *testing.T) {
	mock := &CartServiceMock{Cart: testCart(), ID: "cart-1"}
	handler := NewCartHandler(mock, 5*time.Second)

	body := bytes.NewBufferString(`{"qty":0}`)
	recorder := httptest.NewRecorder()
	request := newChiRequest(http.MethodPatch, "/cart/lines/A1", body, map[string]string{"sku": "A1"})

	handler.UpdateLine(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "A1", mock.UpdatedSKU)
	assert.Equal(t, 0, mock.UpdatedQty)
}

func TestCartUpdateLine_MissingQuantityRejected(t *testing.T) {
	handler := NewCartHandler(&CartServiceMock{}, 5*time.Second)

	body := bytes.NewBufferString(`{}`)
	recorder := httptest.NewRecorder()
	request := newChiRequest(http.MethodPatch, "/cart/lines/A1", body, map[string]string{"sku": "A1"})

	handler.UpdateLine(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartGet_UpstreamFailure(t *testing.T) {
	mock := &CartServiceMock{EnsureErr: errors.New("API error: 503 Service Unavailable")}
	handler := NewCartHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/cart", nil)

	handler.Get(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

// newChiRequest builds a request with chi URL params attached.
func newChiRequest(method, target string, body *bytes.Buffer, params map[string]string) *http.Request {
	var request *http.Request
	if body != nil {
		request = httptest.NewRequest(method, target, body)
	} else {
		request = httptest.NewRequest(method, target, nil)
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, rctx))
}
