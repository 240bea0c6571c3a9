package serverutils

import (
	"testing"

	"notemark-be/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Title string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(payload{Title: "hello"}))
	})

	t.Run("missing required field fails", func(t *testing.T) {
		err := ValidateRequest(payload{})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		assert.Contains(t, err.Error(), "Title")
	})

	t.Run("bad email fails", func(t *testing.T) {
		err := ValidateRequest(payload{Title: "hello", Email: "not-an-email"})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}
