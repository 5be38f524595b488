package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/briantroy/rigor/core/storage"
)

func TestConfigError_Error(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		err := &storage.ConfigError{Section: "prod_aws", Key: "access_key_id"}
		assert.Contains(t, err.Error(), "access_key_id")
		assert.Contains(t, err.Error(), "prod_aws")
	})

	t.Run("Reason", func(t *testing.T) {
		err := &storage.ConfigError{Reason: "unknown backend gcs"}
		assert.Contains(t, err.Error(), "unknown backend gcs")
	})
}

func TestConnectionError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &storage.ConnectionError{Backend: "s3", Bucket: "example-bucket", Err: cause}

	assert.Contains(t, err.Error(), "example-bucket")
	assert.ErrorIs(t, err, cause)
}

func TestBackendError(t *testing.T) {
	cause := errors.New("503 slow down")

	t.Run("WithKey", func(t *testing.T) {
		err := &storage.BackendError{Op: "put", Key: "some/key", Err: cause}
		assert.Contains(t, err.Error(), "put")
		assert.Contains(t, err.Error(), "some/key")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("WithoutKey", func(t *testing.T) {
		err := &storage.BackendError{Op: "list", Err: cause}
		assert.Contains(t, err.Error(), "list")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("As", func(t *testing.T) {
		wrapped := fmt.Errorf("operation failed: %w", &storage.BackendError{Op: "get", Key: "k", Err: cause})
		var backendErr *storage.BackendError
		assert.ErrorAs(t, wrapped, &backendErr)
		assert.Equal(t, "get", backendErr.Op)
	})
}

func TestErrNotFound_IsNotBackendError(t *testing.T) {
	// Absence is a sentinel, never wrapped into the failure taxonomy.
	var backendErr *storage.BackendError
	assert.False(t, errors.As(storage.ErrNotFound, &backendErr))
	assert.ErrorIs(t, storage.ErrNotFound, storage.ErrNotFound)
}
