package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fjod/go_storefront/internal/api"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// OrderAPIMock implements OrderAPI.
type OrderAPIMock struct {
	Order_ *domain.Order
	Err    error
}

func (m *OrderAPIMock) Order(_ context.Context, _ string) (*domain.Order, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Order_, nil
}

// SessionCleanerMock implements SessionCleaner.
type SessionCleanerMock struct {
	Cleared  int
	ClearErr error
}

func (m *SessionCleanerMock) Clear(_ context.Context) error {
	m.Cleared++
	return m.ClearErr
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:          "order-1",
		OrderNumber: "SO-1001",
		Status:      "CONFIRMED",
		Lines: []domain.OrderLine{
			{SKU: "A1", Name: "Widget", Quantity: 2, UnitPrice: 10.0, LineTotal: 20.0},
		},
		Totals: domain.OrderTotals{Items: 2, Grand: 20.0},
	}
}

func TestOrderGet_SuccessClearsSession(t *testing.T) {
	orders := &OrderAPIMock{Order_: testOrder()}
	session := &SessionCleanerMock{}
	handler := NewOrderHandler(orders, session, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := newChiRequest(http.MethodGet, "/orders/order-1", nil, map[string]string{"id": "order-1"})

	handler.Get(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, session.Cleared)

	var response domain.Order
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "order-1", response.ID)
	assert.Equal(t, "SO-1001", response.OrderNumber)
	assert.Equal(t, 20.0, response.Totals.Grand)
}

func TestOrderGet_FailedLoadKeepsSession(t *testing.T) {
	orders := &OrderAPIMock{Err: &api.RemoteError{StatusCode: http.StatusNotFound}}
	session := &SessionCleanerMock{}
	handler := NewOrderHandler(orders, session, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := newChiRequest(http.MethodGet, "/orders/missing", nil, map[string]string{"id": "missing"})

	handler.Get(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 0, session.Cleared, "failed load must not clear the cart session")
}

func TestOrderGet_ClearFailureStillResponds(t *testing.T) {
	orders := &OrderAPIMock{Order_: testOrder()}
	session := &SessionCleanerMock{ClearErr: assert.AnError}
	handler := NewOrderHandler(orders, session, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := newChiRequest(http.MethodGet, "/orders/order-1", nil, map[string]string{"id": "order-1"})

	handler.Get(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, session.Cleared)
}

func TestOrderGet_MissingID(t *testing.T) {
	handler := NewOrderHandler(&OrderAPIMock{}, &SessionCleanerMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := newChiRequest(http.MethodGet, "/orders/", nil, nil)

	handler.Get(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
