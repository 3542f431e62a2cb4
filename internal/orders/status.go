package orders

type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

var validStatuses = map[Status]bool{
	StatusPending:        true,
	StatusPreparing:      true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
}

func ValidStatus(s string) bool { return validStatuses[Status(s)] }

// Terminal reports whether the order may no longer be mutated.
func (s Status) Terminal() bool { return s == StatusDelivered }

// Deletable reports whether the order may still be deleted. Only
// pending orders qualify; anything further along stays on the books.
func (s Status) Deletable() bool { return s == StatusPending }
