package dishes

import (
	_ "embed"
	"encoding/json"
)

//go:embed seed.json
var seedJSON []byte

// Seed returns the dishes the store starts with. The file is embedded
// at build time; a broken seed is a programmer error.
func Seed() []Dish {
	var out []Dish
	if err := json.Unmarshal(seedJSON, &out); err != nil {
		panic(err)
	}
	return out
}
