package storage

import (
	"context"
	"io"
	"sort"

	"go.uber.org/zap"
)

// Client defines the interface for object storage operations. A Client is
// bound to exactly one bucket and one credential context for its lifetime;
// target a different bucket by constructing a new Client.
type Client interface {
	// Get retrieves an object as a byte stream positioned at offset 0.
	// Returns ErrNotFound when the key does not exist.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// GetFile downloads an object to a local file path.
	// Returns ErrNotFound when the key does not exist.
	GetFile(ctx context.Context, key, localPath string) error
	// Put creates or overwrites the object at key. Last write wins; there is
	// no optimistic-concurrency check.
	Put(ctx context.Context, key string, data ObjectData) error
	// Delete removes the object at key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// List produces the keys under prefix (empty prefix means the whole
	// bucket). The channel is lazy, finite and non-restartable; a listing
	// failure is delivered as a final Object with Err set.
	List(ctx context.Context, prefix string) <-chan Object
}

// constructor builds one backend adapter. creds is nil when the adapter
// should use its SDK's ambient credential chain.
type constructor func(ctx context.Context, cfg Config, creds *Credentials, logger *zap.Logger) (Client, error)

// backends is the adapter registry, populated by each adapter's init.
var backends = map[string]constructor{}

func register(name string, fn constructor) {
	backends[name] = fn
}

// Backends returns the names of the registered adapters, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New resolves credentials and constructs the adapter named by cfg.Backend.
// The backend choice is made here, once, not per call. provider may be nil
// when cfg.Credentials is empty.
func New(ctx context.Context, cfg Config, provider ConfigProvider, logger *zap.Logger) (Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Bucket == "" {
		return nil, &ConfigError{Reason: "bucket name is required"}
	}

	build, ok := backends[cfg.Backend]
	if !ok {
		return nil, &ConfigError{Reason: "unknown backend " + cfg.Backend}
	}

	creds, err := resolveCredentials(provider, cfg.Credentials)
	if err != nil {
		return nil, err
	}

	return build(ctx, cfg, creds, logger)
}

// Verify implementations satisfy the interface
var (
	_ Client = (*S3Client)(nil)
	_ Client = (*MinioClient)(nil)
	_ Client = (*MockClient)(nil)
)
