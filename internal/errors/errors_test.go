package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrProjectNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load: %w", ErrProjectNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrProjectNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrProjectNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Single field message", func(t *testing.T) {
		err := NewValidationError("latitude", "must be between -90 and 90")
		assert.Equal(t, "validation error: latitude - must be between -90 and 90", err.Error())
	})

	t.Run("Message without field", func(t *testing.T) {
		err := &ValidationError{Fields: []FieldError{{Message: "invalid draft"}}}
		assert.Equal(t, "validation error: invalid draft", err.Error())
	})

	t.Run("Every violation is kept", func(t *testing.T) {
		verr := &ValidationError{}
		verr.Add("latitude", "out of range")
		verr.Add("sdgs", "at least one SDG is required")
		verr.Add("contact_email", "must be a valid email")

		err := verr.OrNil()
		require.Error(t, err)
		assert.Len(t, verr.Fields, 3)
		assert.True(t, verr.HasField("sdgs"))
		assert.False(t, verr.HasField("name"))
		assert.Contains(t, err.Error(), "latitude - out of range")
		assert.Contains(t, err.Error(), "contact_email - must be a valid email")
	})

	t.Run("Empty error is nil", func(t *testing.T) {
		var verr ValidationError
		assert.NoError(t, verr.OrNil())
	})

	t.Run("AsValidation unwraps", func(t *testing.T) {
		err := fmt.Errorf("create: %w", NewValidationError("name", "required"))
		verr, ok := AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "name", verr.Fields[0].Field)
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrProjectNotFound))
	})
}

func TestWorkflowErrors(t *testing.T) {
	t.Run("InvalidTransitionError", func(t *testing.T) {
		err := NewInvalidTransitionError("approved", "submitted")
		assert.Equal(t, `invalid workflow transition from "approved" to "submitted"`, err.Error())
		assert.True(t, IsInvalidTransition(fmt.Errorf("wrap: %w", err)))
		assert.False(t, IsInvalidTransition(ErrProjectNotFound))
	})

	t.Run("ConflictError", func(t *testing.T) {
		assert.Equal(t, "project was modified concurrently", NewConflictError("project", "").Error())
		assert.Equal(t, "project conflict: status changed", NewConflictError("project", "status changed").Error())
		assert.True(t, IsConflict(NewConflictError("project", "")))
	})

	t.Run("StorageError unwraps the driver error", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewStorageError("update status", cause)
		assert.True(t, IsStorage(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "storage error during update status: connection reset", err.Error())
		assert.NoError(t, NewStorageError("noop", nil))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthorization(ErrInsufficientRole))
	assert.True(t, IsConfiguration(ErrNotifierNotConfigured))
	assert.False(t, IsAuthentication(ErrInsufficientRole))
	assert.Equal(t, "custom", NewAuthenticationError("custom").Error())
	assert.Equal(t, "nope", NewAuthorizationError("nope").Error())
	assert.Equal(t, "missing", NewConfigurationError("missing").Error())
}
