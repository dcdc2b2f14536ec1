package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrorTypeConfig, "invalid username")
	assert.Equal(t, "config error: invalid username", err.Error())

	wrapped := Wrap(ErrorTypeNetwork, "enumeration failed", stderrors.New("connection refused"))
	assert.Equal(t, "network error: enumeration failed: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrorTypeExtraction, "retrieval failed", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeRateLimit, TypeOf(New(ErrorTypeRateLimit, "slow down")))

	// Typed errors survive wrapping with %w.
	wrapped := fmt.Errorf("outer: %w", New(ErrorTypeAuth, "login required"))
	assert.Equal(t, ErrorTypeAuth, TypeOf(wrapped))

	assert.Equal(t, ErrorTypeUnknown, TypeOf(stderrors.New("plain")))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrorTypeNetwork))
	assert.True(t, IsRetryable(ErrorTypeRateLimit))

	assert.False(t, IsRetryable(ErrorTypeConfig))
	assert.False(t, IsRetryable(ErrorTypeCapability))
	assert.False(t, IsRetryable(ErrorTypeAuth))
	assert.False(t, IsRetryable(ErrorTypeNotFound))
	assert.False(t, IsRetryable(ErrorTypeExtraction))
	assert.False(t, IsRetryable(ErrorTypeUnknown))
}
