package dishes

// Dish is a menu entry. ID is assigned at creation and never changes;
// every other field is overwritten wholesale on update.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}
