package orders

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "OrderCreated"
	EventOrderUpdated = "OrderUpdated"
	EventOrderDeleted = "OrderDeleted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // one of the consts above
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g. "grubdash-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload per event ----

type OrderCreatedPayload struct {
	Order Order `json:"order"`
}

type OrderUpdatedPayload struct {
	Order          Order  `json:"order"`
	PreviousStatus Status `json:"previous_status"`
}

type OrderDeletedPayload struct {
	OrderID string `json:"order_id"`
	Status  Status `json:"status"` // status at deletion time, always pending
}
