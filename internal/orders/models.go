package orders

// OrderDish references a dish on the menu; the order does not own it.
type OrderDish struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// Order is a delivery order. ID is assigned at creation and immutable;
// the remaining fields are overwritten wholesale on update.
type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       Status      `json:"status"`
	Dishes       []OrderDish `json:"dishes"`
}
