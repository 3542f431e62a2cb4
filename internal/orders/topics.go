package orders

const (
	TopicOrderCreated = "order.created"
	TopicOrderUpdated = "order.updated"
	TopicOrderDeleted = "order.deleted"
)

// Topics lists every order topic, for consumers that follow the whole
// lifecycle.
func Topics() []string {
	return []string{TopicOrderCreated, TopicOrderUpdated, TopicOrderDeleted}
}

// Partition key = order id, so all events of one order keep their order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
