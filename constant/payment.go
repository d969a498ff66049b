package constant

type PaymentMethod string

const (
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodBankAccount PaymentMethod = "bank_account"
	PaymentMethodWallet      PaymentMethod = "wallet"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

const (
	MessageTypeText     = "text"
	MessageTypeImage    = "image"
	MessageTypeLocation = "location"
	MessageTypeSystem   = "system"
)
