package dishes

import (
	"fmt"

	"github.com/google/uuid"

	"grubdash/internal/pipeline"
)

// request carries one mutating request through its pipeline: the route
// id, the decoded payload, and the dish resolved by the exists step.
type request struct {
	routeID string
	body    pipeline.Payload
	dish    Dish
}

func requireField(name string) pipeline.Step[request] {
	return func(rc *request) *pipeline.Error {
		if rc.body.Has(name) {
			return nil
		}
		return pipeline.BadRequest("Dish must include a " + name)
	}
}

func priceIsValid(rc *request) *pipeline.Error {
	price, ok := rc.body.Int("price")
	if !ok || price <= 0 {
		return pipeline.BadRequest("Dish must have a price that is an integer greater than 0")
	}
	return nil
}

// exists resolves the route id against the store and parks the dish on
// the request context for the steps and mutation behind it.
func exists(store *Store) pipeline.Step[request] {
	return func(rc *request) *pipeline.Error {
		d, ok := store.Find(rc.routeID)
		if !ok {
			return pipeline.NotFound("Dish does not exist: " + rc.routeID)
		}
		rc.dish = d
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
	return pipeline.BadRequest(fmt.Sprintf("Dish id does not match route id. Dish: %v, Route: %v", id, rc.routeID))
}

func fieldChecks() []pipeline.Step[request] {
	return []pipeline.Step[request]{
		requireField("name"),
		requireField("description"),
		requireField("price"),
		requireField("image_url"),
		priceIsValid,
	}
}

// List returns every dish.
func List(store *Store) []Dish { return store.List() }

// Read resolves a single dish by id.
func Read(store *Store, id string) (Dish, *pipeline.Error) {
	rc := &request{routeID: id}
	if err := pipeline.Run(rc, exists(store)); err != nil {
		return Dish{}, err
	}
	return rc.dish, nil
}

// Create validates the payload and appends a new dish under a fresh id.
func Create(store *Store, body pipeline.Payload) (Dish, *pipeline.Error) {
	rc := &request{body: body}
	if err := pipeline.Run(rc, fieldChecks()...); err != nil {
		return Dish{}, err
	}
	d := fromPayload(body)
	d.ID = uuid.NewString()
	store.Insert(d)
	return d, nil
}

// Update overwrites the four mutable fields of an existing dish. The id
// is taken from the route and never from the payload.
func Update(store *Store, id string, body pipeline.Payload) (Dish, *pipeline.Error) {
	rc := &request{routeID: id, body: body}
	steps := append([]pipeline.Step[request]{exists(store), idMatchesRoute}, fieldChecks()...)
	if err := pipeline.Run(rc, steps...); err != nil {
		return Dish{}, err
	}
	d := fromPayload(body)
	d.ID = rc.dish.ID
	store.Replace(d)
	return d, nil
}

func fromPayload(body pipeline.Payload) Dish {
	price, _ := body.Int("price")
	return Dish{
		Name:        body.String("name"),
		Description: body.String("description"),
		Price:       price,
		ImageURL:    body.String("image_url"),
	}
}
