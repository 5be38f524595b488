package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get and GetFile when the key does not exist in
// the bucket. Absence is an expected condition, not a backend failure, so it
// is never wrapped inside a BackendError; check it with errors.Is.
var ErrNotFound = errors.New("object not found")

// ConfigError indicates that required configuration is missing or invalid.
// It is returned at construction time and is not retryable.
type ConfigError struct {
	Section string
	Key     string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Section != "" && e.Key != "" {
		return fmt.Sprintf("storage config: missing %q in section %q", e.Key, e.Section)
	}
	return fmt.Sprintf("storage config: %s", e.Reason)
}

// ConnectionError indicates that the bucket could not be reached or does not
// exist. It is returned at construction time.
type ConnectionError struct {
	Backend string
	Bucket  string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("storage connect (%s): bucket %q not accessible: %v", e.Backend, e.Bucket, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// BackendError wraps a transport, auth or service failure during an
// operation. The wrapped SDK error remains reachable through Unwrap.
type BackendError struct {
	Op  string
	Key string
	Err error
}

func (e *BackendError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
