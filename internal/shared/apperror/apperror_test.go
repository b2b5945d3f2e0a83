package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfClassifiedError(t *testing.T) {
	err := New(CodeStockMismatch, "stock 9 does not match current stock 10")

	assert.Equal(t, CodeStockMismatch, CodeOf(err))
	assert.True(t, IsCode(err, CodeStockMismatch))
	assert.False(t, IsCode(err, CodeValidation))
}

func TestCodeOfWrappedError(t *testing.T) {
	inner := New(CodeNotFound, "store 42 does not exist")
	wrapped := fmt.Errorf("assign: %w", inner)

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
}

func TestCodeOfPlainErrorIsTechnical(t *testing.T) {
	assert.Equal(t, CodeTechnical, CodeOf(errors.New("connection refused")))
}

func TestTechnicalKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Technical("failed to list warehouses", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to list warehouses")
}
