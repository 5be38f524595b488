package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/briantroy/rigor/core/logger"
	"github.com/briantroy/rigor/core/storage"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Storage holds configuration for the object storage backend.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// Values exposes raw configuration as a section -> key lookup. Credential
// sections (named by storage.credentials) are read through it, so they can
// live anywhere in the environment or config file without a struct mapping.
type Values struct {
	v *viper.Viper
}

var _ storage.ConfigProvider = (*Values)(nil)

// Get returns the value at section.key, failing when it is absent.
func (c *Values) Get(section, key string) (string, error) {
	full := section + "." + key
	if !c.v.IsSet(full) {
		return "", fmt.Errorf("config: %q not set", full)
	}
	value := c.v.GetString(full)
	if value == "" {
		return "", fmt.Errorf("config: %q is empty", full)
	}
	return value, nil
}

// LoadConfig loads configuration from environment variables and .env file.
// The returned Values shares the same sources and serves section/key lookups.
func LoadConfig(path string) (*Config, *Values, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. STORAGE_BUCKET -> storage.bucket)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, err
	}

	return &config, &Values{v: v}, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
