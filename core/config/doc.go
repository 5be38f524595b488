// Package config provides configuration management for the rigor client.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Storage: backend choice, bucket, region, endpoint, credentials section
//   - Log: logging level and format
//
// Named credential sections are not part of the struct; they are resolved at
// client construction through Values, a raw section/key lookup over the same
// sources.
//
// # Usage
//
//	cfg, values, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := storage.New(ctx, cfg.Storage, values, logger)
package config
