package models

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "Card"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetbanking PaymentMethod = "Netbanking"
	PaymentMethodCash       PaymentMethod = "Cash"
)

// Valid reports whether the method is one of the closed set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetbanking, PaymentMethodCash:
		return true
	}
	return false
}

// PaymentEntry is one recorded payment. Entries are append-only and
// immutable once written. Date is a calendar date in YYYY-MM-DD form.
type PaymentEntry struct {
	Amount int           `json:"amount"`
	Date   string        `json:"date"`
	Method PaymentMethod `json:"method"`
}
