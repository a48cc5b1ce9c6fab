package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// UnknownTurfName метка для бронирований, у которых площадка не заджойнилась
const UnknownTurfName = "Unknown"

// PaymentRefPrefix префикс синтетического идентификатора demo-платежа
const PaymentRefPrefix = "demo_txn_"

// DefaultRole роль, назначаемая при первом входе, если клиент её не передал
const DefaultRole = RoleUser

// Business validation constants
const (
	MaxPromoCodeLength = 32
	MaxTurfNameLength  = 200
)
