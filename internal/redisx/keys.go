package redisx

import "time"

const (
	// Cached order entity: order:{order_id} -> serialized Order.
	// Refreshed on create/update, dropped on delete, so a cache hit is
	// never stale relative to the store.
	KeyOrder = "order:%s"

	// Dedup for event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLOrderCache = 5 * time.Minute
	TTLDedup      = 48 * time.Hour
)
