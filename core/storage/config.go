package storage

// Config holds configuration for the storage backend.
type Config struct {
	// Backend selects the adapter implementation ("s3" or "minio").
	Backend string `mapstructure:"backend" default:"s3"`
	// Bucket is the name of the bucket all operations are scoped to.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1"`
	// Endpoint overrides the service URL (for MinIO or other S3-compatible
	// services). Empty means the SDK default endpoint.
	Endpoint string `mapstructure:"endpoint" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Credentials names a configuration section holding access_key_id and
	// secret_access_key. Empty means ambient credentials (environment,
	// shared credentials file, instance profile).
	Credentials string `mapstructure:"credentials" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ConfigProvider is the section-to-key lookup used to resolve a named
// credentials section. It is satisfied by config.Values.
type ConfigProvider interface {
	Get(section, key string) (string, error)
}

// Credentials is an access-key/secret pair resolved from configuration.
// A nil *Credentials means the adapter uses its SDK's default chain.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

const (
	credKeyAccessKeyID     = "access_key_id"
	credKeySecretAccessKey = "secret_access_key"
)

// resolveCredentials reads the named section through the provider. A missing
// section or key is a ConfigError; an empty section name means ambient
// credentials and yields nil.
func resolveCredentials(provider ConfigProvider, section string) (*Credentials, error) {
	if section == "" {
		return nil, nil
	}
	if provider == nil {
		return nil, &ConfigError{Reason: "credentials section named but no config provider given"}
	}

	accessKey, err := provider.Get(section, credKeyAccessKeyID)
	if err != nil {
		return nil, &ConfigError{Section: section, Key: credKeyAccessKeyID}
	}
	secretKey, err := provider.Get(section, credKeySecretAccessKey)
	if err != nil {
		return nil, &ConfigError{Section: section, Key: credKeySecretAccessKey}
	}

	return &Credentials{AccessKeyID: accessKey, SecretAccessKey: secretKey}, nil
}
