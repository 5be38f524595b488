// Package storage provides an abstraction layer for S3-compatible object
// storage.
//
// It defines a small Client interface over get/put/delete/list against one
// bucket, with two interchangeable backend adapters: one built on the AWS
// SDK (S3Client) and one built on the MinIO SDK (MinioClient). The backend
// is chosen once at construction through New, driven by configuration, and
// both adapters present identical observable behavior.
//
// # Client Interface
//
// A Client is bound to one bucket and one credential context for its whole
// lifetime. Credentials come either from a named configuration section
// (resolved through a ConfigProvider) or from the SDK's ambient chain.
//
// # Errors
//
//   - ConfigError: required credential fields missing; construction time.
//   - ConnectionError: bucket absent or unreachable; construction time.
//   - BackendError: transport/auth/service failure during an operation.
//   - ErrNotFound: the not-found sentinel for Get — expected absence, not a
//     failure; check it with errors.Is.
//
// # Usage
//
//	client, err := storage.New(ctx, cfg.Storage, values, logger)
//	body, err := client.Get(ctx, "some/key")
//	if errors.Is(err, storage.ErrNotFound) { ... }
package storage
