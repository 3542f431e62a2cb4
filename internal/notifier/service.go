package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "grubdash/internal/kafka"
	"grubdash/internal/orders"
	"grubdash/internal/redisx"
)

// Service turns order events into customer notifications. The demo
// notification channel is the log; the dedup keeps redeliveries from
// notifying twice.
type Service struct {
	Redis       *redis.Client // optional, nil disables dedup
	ServiceName string
}

// HandleOrderEvent is mounted as the consumer handler for every order
// topic. Returning nil commits the offset.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	if seen, err := s.seen(ctx, env.EventID); err == nil && seen {
		return nil
	}

	switch env.EventType {
	case orders.EventOrderCreated:
		p, err := kafkax.UnwrapPayload[orders.OrderCreatedPayload](env.Payload)
		if err != nil {
			return err
		}
		log.Printf("order %s received: %d dish(es) to %s", p.Order.ID, len(p.Order.Dishes), p.Order.DeliverTo)
	case orders.EventOrderUpdated:
		p, err := kafkax.UnwrapPayload[orders.OrderUpdatedPayload](env.Payload)
		if err != nil {
			return err
		}
		if p.Order.Status != p.PreviousStatus {
			log.Printf("order %s is now %s", p.Order.ID, p.Order.Status)
		} else {
			log.Printf("order %s updated", p.Order.ID)
		}
	case orders.EventOrderDeleted:
		p, err := kafkax.UnwrapPayload[orders.OrderDeletedPayload](env.Payload)
		if err != nil {
			return err
		}
		log.Printf("order %s cancelled", p.OrderID)
	default:
		// unknown event versions are skipped, not retried
	}
	return nil
}

// seen marks the event id in Redis and reports whether it was already
// processed.
func (s *Service) seen(ctx context.Context, eventID string) (bool, error) {
	if s.Redis == nil {
		return false, nil
	}
	dkey := fmt.Sprintf(redisx.KeyDedup, "notifier", eventID)
	exists, err := redisx.Exists(ctx, s.Redis, dkey)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	return false, nil
}
