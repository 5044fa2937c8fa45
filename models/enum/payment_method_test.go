package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodTransfer.Valid())
	assert.True(t, PaymentMethodCOD.Valid())
	assert.False(t, PaymentMethod("Barter").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestPaymentMethodNormalize(t *testing.T) {
	assert.Equal(t, PaymentMethodTransfer, PaymentMethod("").Normalize())
	assert.Equal(t, PaymentMethodCash, PaymentMethodCash.Normalize())
}
