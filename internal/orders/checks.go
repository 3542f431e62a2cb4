package orders

import (
	"fmt"

	"github.com/google/uuid"

	"grubdash/internal/pipeline"
)

// request carries one mutating request through its pipeline: the route
// id, the decoded payload, and the order resolved by the exists step.
type request struct {
	routeID string
	body    pipeline.Payload
	order   Order
}

func requireField(name string) pipeline.Step[request] {
	return func(rc *request) *pipeline.Error {
		if rc.body.Has(name) {
			return nil
		}
		return pipeline.BadRequest("Order must include a " + name)
	}
}

func dishesNotEmpty(rc *request) *pipeline.Error {
	arr, ok := rc.body.Slice("dishes")
	if !ok || len(arr) == 0 {
		return pipeline.BadRequest("Order must include at least one dish")
	}
	return nil
}

// dishQuantitiesValid runs after dishesNotEmpty, so the sequence is
// known to exist. The first bad entry is reported by zero-based index.
func dishQuantitiesValid(rc *request) *pipeline.Error {
	arr, _ := rc.body.Slice("dishes")
	for i, entry := range arr {
		m, _ := entry.(map[string]any)
		q, ok := pipeline.IntValue(m["quantity"])
		if !ok || q <= 0 {
			return pipeline.BadRequest(fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", i))
		}
	}
	return nil
}

// exists resolves the route id against the store and parks the order on
// the request context for the guards and mutation behind it.
func exists(store *Store) pipeline.Step[request] {
	return func(rc *request) *pipeline.Error {
		o, ok := store.Find(rc.routeID)
		if !ok {
			return pipeline.NotFound("Order id not found: " + rc.routeID)
		}
		rc.order = o
		return nil
	}
}

// idMatchesRoute lets a missing or falsy body id pass; a present id has
// to equal the route id exactly.
func idMatchesRoute(rc *request) *pipeline.Error {
	id := rc.body.Field("id")
	if !rc.body.Has("id") {
		return nil
	}
	if s, ok := id.(string); ok && s == rc.routeID {
		return nil
	}
	return pipeline.BadRequest(fmt.Sprintf("Order id does not match route id. Order: %v, Route: %v", id, rc.routeID))
}

func statusIsValid(rc *request) *pipeline.Error {
	if ValidStatus(rc.body.String("status")) {
		return nil
	}
	return pipeline.BadRequest("Order must have a status of pending, preparing, out-for-delivery, delivered")
}

// notDelivered guards the stored status, not the payload: a delivered
// order is immutable no matter what the update carries.
func notDelivered(rc *request) *pipeline.Error {
	if rc.order.Status.Terminal() {
		return pipeline.BadRequest("A delivered order cannot be changed")
	}
	return nil
}

func deletable(rc *request) *pipeline.Error {
	if rc.order.Status.Deletable() {
		return nil
	}
	return pipeline.BadRequest("An order cannot be deleted unless it is pending")
}

// List returns every order, or only those referencing dishID when the
// filter is non-empty.
func List(store *Store, dishID string) []Order {
	if dishID == "" {
		return store.List()
	}
	return store.ListByDish(dishID)
}

// Read resolves a single order by id.
func Read(store *Store, id string) (Order, *pipeline.Error) {
	rc := &request{routeID: id}
	if err := pipeline.Run(rc, exists(store)); err != nil {
		return Order{}, err
	}
	return rc.order, nil
}

// Create validates the payload and appends a new order under a fresh
// id. Status is stored as supplied; creation does not force a default.
func Create(store *Store, body pipeline.Payload) (Order, *pipeline.Error) {
	rc := &request{body: body}
	err := pipeline.Run(rc,
		requireField("deliverTo"),
		requireField("mobileNumber"),
		requireField("dishes"),
		dishesNotEmpty,
		dishQuantitiesValid,
	)
	if err != nil {
		return Order{}, err
	}
	o := fromPayload(body)
	o.ID = uuid.NewString()
	store.Insert(o)
	return o, nil
}

// Update overwrites the four mutable fields of an existing order. The
// id is taken from the route and never from the payload.
func Update(store *Store, id string, body pipeline.Payload) (Order, *pipeline.Error) {
	rc := &request{routeID: id, body: body}
	err := pipeline.Run(rc,
		exists(store),
		idMatchesRoute,
		requireField("deliverTo"),
		requireField("mobileNumber"),
		requireField("dishes"),
		requireField("status"),
		dishesNotEmpty,
		dishQuantitiesValid,
		statusIsValid,
		notDelivered,
	)
	if err != nil {
		return Order{}, err
	}
	o := fromPayload(body)
	o.ID = rc.order.ID
	store.Replace(o)
	return o, nil
}

// Delete removes a pending order and returns its last snapshot.
func Delete(store *Store, id string) (Order, *pipeline.Error) {
	rc := &request{routeID: id}
	if err := pipeline.Run(rc, exists(store), deletable); err != nil {
		return Order{}, err
	}
	store.Remove(id)
	return rc.order, nil
}

func fromPayload(body pipeline.Payload) Order {
	return Order{
		DeliverTo:    body.String("deliverTo"),
		MobileNumber: body.String("mobileNumber"),
		Status:       Status(body.String("status")),
		Dishes:       dishesFromPayload(body),
	}
}

func dishesFromPayload(body pipeline.Payload) []OrderDish {
	arr, _ := body.Slice("dishes")
	out := make([]OrderDish, 0, len(arr))
	for _, entry := range arr {
		m, _ := entry.(map[string]any)
		id, _ := m["dishId"].(string)
		q, _ := pipeline.IntValue(m["quantity"])
		out = append(out, OrderDish{DishID: id, Quantity: q})
	}
	return out
}
