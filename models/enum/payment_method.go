package enum

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Cash"
	PaymentMethodTransfer PaymentMethod = "Transfer"
	PaymentMethodCOD      PaymentMethod = "COD"
)

// DefaultPaymentMethod is what the POS form falls back to when the
// cashier leaves the field untouched.
const DefaultPaymentMethod = PaymentMethodTransfer

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodCOD:
		return true
	}
	return false
}

// Normalize maps an empty selection to the default method.
func (m PaymentMethod) Normalize() PaymentMethod {
	if m == "" {
		return DefaultPaymentMethod
	}
	return m
}
