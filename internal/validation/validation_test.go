package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/expense-tracker/internal/validation"
)

type sample struct {
	Email  string  `json:"email" validate:"required,email"`
	Secret string  `json:"-" validate:"min=8"`
	Kind   string  `json:"kind" validate:"omitempty,oneof=INCOME EXPENSE"`
	Amount float64 `json:"amount" validate:"omitempty,gt=0"`
}

func TestStruct(t *testing.T) {
	t.Run("valid input returns nil", func(t *testing.T) {
		fields := validation.Struct(sample{
			Email:  "alice@example.com",
			Secret: "long-enough",
			Kind:   "EXPENSE",
			Amount: 10,
		})
		assert.Nil(t, fields)
	})

	t.Run("failures keyed by json name", func(t *testing.T) {
		fields := validation.Struct(sample{
			Email:  "not-an-email",
			Secret: "long-enough",
			Kind:   "TRANSFER",
			Amount: -1,
		})

		require.NotNil(t, fields)
		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "must be one of: INCOME EXPENSE", fields["kind"])
		assert.Equal(t, "must be greater than 0", fields["amount"])
	})

	t.Run("missing required field", func(t *testing.T) {
		fields := validation.Struct(sample{Secret: "long-enough"})

		require.NotNil(t, fields)
		assert.Equal(t, "is required", fields["email"])
	})
}
