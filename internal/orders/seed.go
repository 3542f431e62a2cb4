package orders

import (
	_ "embed"
	"encoding/json"
)

//go:embed seed.json
var seedJSON []byte

// Seed returns the orders the store starts with.
func Seed() []Order {
	var out []Order
	if err := json.Unmarshal(seedJSON, &out); err != nil {
		panic(err)
	}
	return out
}
