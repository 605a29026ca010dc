package constants

// NSQ topics for domain events
const (
	TopicPaymentCreated  = "payment.created"
	TopicPaymentDeleted  = "payment.deleted"
	TopicReceiptAssigned = "receipt.assigned"
	TopicLocationUpdated = "location.updated"
)
