package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grubdash/internal/orders"
)

func newOrderRouter() (http.Handler, *orders.Store) {
	store := orders.NewStore([]orders.Order{
		{
			ID:           "order-pending",
			DeliverTo:    "1 First Ave",
			MobileNumber: "555-0001",
			Status:       orders.StatusPending,
			Dishes:       []orders.OrderDish{{DishID: "dish-1", Quantity: 1}},
		},
		{
			ID:           "order-delivered",
			DeliverTo:    "2 Second Ave",
			MobileNumber: "555-0002",
			Status:       orders.StatusDelivered,
			Dishes:       []orders.OrderDish{{DishID: "dish-2", Quantity: 2}},
		},
	})
	r := NewRouter()
	// no producer, no cache: pure in-memory handling
	h := &OrdersHandler{Store: store, Service: "test"}
	h.Register(r)
	return r, store
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) orders.Order {
	t.Helper()
	var body struct {
		Data orders.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func TestListOrders(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []orders.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestListOrdersFilteredByDish(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodGet, "/orders?dishId=dish-2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []orders.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "order-delivered", body.Data[0].ID)
}

func TestCreateOrderEndToEnd(t *testing.T) {
	h, store := newOrderRouter()

	rec := do(t, h, http.MethodPost, "/orders",
		`{"data":{"deliverTo":"3 Third Ave","mobileNumber":"555-0003","status":"pending","dishes":[{"dishId":"dish-1","quantity":2}]}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	o := decodeOrder(t, rec)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "3 Third Ave", o.DeliverTo)
	assert.Equal(t, []orders.OrderDish{{DishID: "dish-1", Quantity: 2}}, o.Dishes)

	_, ok := store.Find(o.ID)
	assert.True(t, ok)
}

func TestCreateOrderMissingField(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodPost, "/orders",
		`{"data":{"mobileNumber":"555-0003","dishes":[{"dishId":"dish-1","quantity":2}]}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Order must include a deliverTo", decodeError(t, rec))
}

func TestCreateOrderBadQuantity(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodPost, "/orders",
		`{"data":{"deliverTo":"3 Third Ave","mobileNumber":"555-0003","dishes":[{"dishId":"a","quantity":1},{"dishId":"b","quantity":0}]}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Dish 1 must have a quantity that is an integer greater than 0", decodeError(t, rec))
}

func TestUpdateDeliveredOrderRejected(t *testing.T) {
	h, store := newOrderRouter()
	before, _ := store.Find("order-delivered")

	rec := do(t, h, http.MethodPut, "/orders/order-delivered",
		`{"data":{"deliverTo":"Somewhere else","mobileNumber":"555-9999","status":"pending","dishes":[{"dishId":"dish-2","quantity":2}]}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A delivered order cannot be changed", decodeError(t, rec))

	after, _ := store.Find("order-delivered")
	assert.Equal(t, before, after, "stored order unchanged")
}

func TestUpdateOrderEndToEnd(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodPut, "/orders/order-pending",
		`{"data":{"deliverTo":"1 First Ave","mobileNumber":"555-0001","status":"preparing","dishes":[{"dishId":"dish-1","quantity":1}]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	o := decodeOrder(t, rec)
	assert.Equal(t, "order-pending", o.ID)
	assert.Equal(t, orders.StatusPreparing, o.Status)
}

func TestDeletePendingOrder(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodDelete, "/orders/order-pending", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// gone from reads and lists
	rec = do(t, h, http.MethodGet, "/orders/order-pending", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/orders", "")
	var body struct {
		Data []orders.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
}

func TestDeleteNonPendingOrder(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodDelete, "/orders/order-delivered", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "An order cannot be deleted unless it is pending", decodeError(t, rec))
}

func TestDeleteUnknownOrder(t *testing.T) {
	h, _ := newOrderRouter()

	rec := do(t, h, http.MethodDelete, "/orders/ghost", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order id not found: ghost", decodeError(t, rec))
}

func TestReadOrderIdempotent(t *testing.T) {
	h, _ := newOrderRouter()

	first := do(t, h, http.MethodGet, "/orders/order-pending", "")
	require.Equal(t, http.StatusOK, first.Code)
	second := do(t, h, http.MethodGet, "/orders/order-pending", "")
	assert.Equal(t, first.Body.String(), second.Body.String())
}
