package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "grubdash/internal/kafka"
	"grubdash/internal/orders"
	"grubdash/internal/redisx"
)

// OrdersHandler is the HTTP glue around the order pipelines. Producer
// and Redis are optional; with both nil the handler runs purely against
// the in-memory store.
type OrdersHandler struct {
	Store    *orders.Store
	Producer *kafkax.Producer
	Redis    *redis.Client
	Service  string
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/orders", h.list)
	r.Post("/orders", h.create)
	r.Get("/orders/{orderId}", h.read)
	r.Put("/orders/{orderId}", h.update)
	r.Delete("/orders/{orderId}", h.delete)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, orders.List(h.Store, r.URL.Query().Get("dishId")))
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	o, perr := orders.Create(h.Store, body)
	if perr != nil {
		writePipelineError(w, perr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	h.cacheSet(ctx, o)
	h.publish(r, orders.TopicOrderCreated, orders.EventOrderCreated, o.ID,
		orders.OrderCreatedPayload{Order: o})

	writeData(w, http.StatusCreated, o)
}

func (h *OrdersHandler) read(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// cache first, store as fallback
	if raw, ok := h.cacheGet(ctx, orderID); ok {
		writeJSON(w, http.StatusOK, dataResponse{Data: raw})
		return
	}

	o, perr := orders.Read(h.Store, orderID)
	if perr != nil {
		writePipelineError(w, perr)
		return
	}
	h.cacheSet(ctx, o)
	writeData(w, http.StatusOK, o)
}

func (h *OrdersHandler) update(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "orderId")
	prev, _ := h.Store.Find(orderID) // snapshot for the event payload

	o, perr := orders.Update(h.Store, orderID, body)
	if perr != nil {
		writePipelineError(w, perr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	h.cacheSet(ctx, o)
	h.publish(r, orders.TopicOrderUpdated, orders.EventOrderUpdated, o.ID,
		orders.OrderUpdatedPayload{Order: o, PreviousStatus: prev.Status})

	writeData(w, http.StatusOK, o)
}

func (h *OrdersHandler) delete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	o, perr := orders.Delete(h.Store, orderID)
	if perr != nil {
		writePipelineError(w, perr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	h.cacheDrop(ctx, orderID)
	h.publish(r, orders.TopicOrderDeleted, orders.EventOrderDeleted, orderID,
		orders.OrderDeletedPayload{OrderID: orderID, Status: o.Status})

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrdersHandler) publish(r *http.Request, topic, eventType, orderID string, payload any) {
	if h.Producer == nil {
		return
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       middleware.GetReqID(r.Context()),
		CorrelationID: orderID,
		Payload:       kafkax.MustMarshal(payload),
	}
	h.Producer.Publish(topic, orders.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *OrdersHandler) cacheGet(ctx context.Context, orderID string) (json.RawMessage, bool) {
	if h.Redis == nil {
		return nil, false
	}
	key := fmt.Sprintf(redisx.KeyOrder, orderID)
	s, err := h.Redis.Get(ctx, key).Result()
	if err != nil || s == "" {
		return nil, false
	}
	return json.RawMessage(s), true
}

func (h *OrdersHandler) cacheSet(ctx context.Context, o orders.Order) {
	if h.Redis == nil {
		return
	}
	key := fmt.Sprintf(redisx.KeyOrder, o.ID)
	b, err := json.Marshal(o)
	if err != nil {
		return
	}
	_ = h.Redis.Set(ctx, key, b, redisx.TTLOrderCache).Err()
}

func (h *OrdersHandler) cacheDrop(ctx context.Context, orderID string) {
	if h.Redis == nil {
		return
	}
	_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyOrder, orderID)).Err()
}
