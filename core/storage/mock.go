package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// MockClient is an in-memory storage client for testing. It honors the same
// contract as the real adapters: the not-found sentinel on Get, overwrite on
// Put, idempotent Delete and prefix-filtered lazy listing.
type MockClient struct {
	mu      sync.RWMutex
	objects map[string]*mockObject

	// Error injection for testing error handling
	GetError    error
	PutError    error
	DeleteError error
	ListError   error
}

type mockObject struct {
	data         []byte
	lastModified time.Time
}

// NewMockClient creates a new in-memory mock storage client.
func NewMockClient() *MockClient {
	return &MockClient{
		objects: make(map[string]*mockObject),
	}
}

func (m *MockClient) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if m.GetError != nil {
		return nil, &BackendError{Op: "get", Key: key, Err: m.GetError}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[key]
	if !ok {
		return nil, ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (m *MockClient) GetFile(ctx context.Context, key, localPath string) error {
	body, err := m.Get(ctx, key)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return &BackendError{Op: "get", Key: key, Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return &BackendError{Op: "get", Key: key, Err: err}
	}
	return nil
}

func (m *MockClient) Put(ctx context.Context, key string, data ObjectData) error {
	if m.PutError != nil {
		return &BackendError{Op: "put", Key: key, Err: m.PutError}
	}

	var content []byte
	if r, ok := data.Reader(); ok {
		b, err := io.ReadAll(r)
		if err != nil {
			return &BackendError{Op: "put", Key: key, Err: err}
		}
		content = b
	} else if path, ok := data.Path(); ok {
		b, err := os.ReadFile(path)
		if err != nil {
			return &BackendError{Op: "put", Key: key, Err: err}
		}
		content = b
	} else {
		return &BackendError{Op: "put", Key: key, Err: errNoDataSource}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[key] = &mockObject{
		data:         content,
		lastModified: time.Now(),
	}
	return nil
}

func (m *MockClient) Delete(ctx context.Context, key string) error {
	if m.DeleteError != nil {
		return &BackendError{Op: "delete", Key: key, Err: m.DeleteError}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, key)
	return nil
}

func (m *MockClient) List(ctx context.Context, prefix string) <-chan Object {
	ch := make(chan Object, 1)

	go func() {
		defer close(ch)

		if m.ListError != nil {
			ch <- Object{Err: &BackendError{Op: "list", Err: m.ListError}}
			return
		}

		m.mu.RLock()
		entries := make([]Object, 0, len(m.objects))
		for key, obj := range m.objects {
			if prefix == "" || strings.HasPrefix(key, prefix) {
				entries = append(entries, Object{
					Key:          key,
					Size:         int64(len(obj.data)),
					LastModified: obj.lastModified,
				})
			}
		}
		m.mu.RUnlock()

		for _, entry := range entries {
			select {
			case ch <- entry:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// Helper methods for testing

// AddObject adds an object directly to the mock storage.
func (m *MockClient) AddObject(key string, data []byte, lastModified time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[key] = &mockObject{
		data:         data,
		lastModified: lastModified,
	}
}

// Object returns the raw data for a key (for test assertions).
func (m *MockClient) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[key]
	if !ok {
		return nil, false
	}
	return obj.data, true
}

// Count returns the number of objects in the mock storage.
func (m *MockClient) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.objects)
}

// Clear removes all objects from the mock storage.
func (m *MockClient) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects = make(map[string]*mockObject)
}

// Keys returns all keys in the mock storage.
func (m *MockClient) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}
