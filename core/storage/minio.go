package storage

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const BackendMinio = "minio"

func init() {
	register(BackendMinio, func(ctx context.Context, cfg Config, creds *Credentials, logger *zap.Logger) (Client, error) {
		return NewMinioClient(ctx, cfg, creds, logger)
	})
}

// MinioClient accesses object storage through the MinIO SDK. It works with
// any S3-compatible service (MinIO, AWS S3, and others).
type MinioClient struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewMinioClient builds a MinIO client and verifies the bucket exists.
func NewMinioClient(ctx context.Context, cfg Config, creds *Credentials, logger *zap.Logger) (*MinioClient, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	var provider *credentials.Credentials
	if creds != nil {
		provider = credentials.NewStaticV4(creds.AccessKeyID, creds.SecretAccessKey, "")
	} else {
		provider = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.FileAWSCredentials{},
			&credentials.IAM{},
		})
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     provider,
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, &ConnectionError{Backend: BackendMinio, Bucket: cfg.Bucket, Err: err}
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, &ConnectionError{Backend: BackendMinio, Bucket: cfg.Bucket, Err: err}
	}
	if !exists {
		return nil, &ConnectionError{Backend: BackendMinio, Bucket: cfg.Bucket, Err: errBucketMissing}
	}

	return &MinioClient{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

func (c *MinioClient) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &BackendError{Op: "get", Key: key, Err: err}
	}

	// GetObject is lazy; Stat forces the first round trip so absence can be
	// reported as the sentinel instead of a late read error.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if isMinioNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, &BackendError{Op: "get", Key: key, Err: err}
	}

	return obj, nil
}

func (c *MinioClient) GetFile(ctx context.Context, key, localPath string) error {
	err := c.client.FGetObject(ctx, c.bucket, key, localPath, minio.GetObjectOptions{})
	if err != nil {
		if isMinioNoSuchKey(err) {
			return ErrNotFound
		}
		return &BackendError{Op: "get", Key: key, Err: err}
	}
	return nil
}

func (c *MinioClient) Put(ctx context.Context, key string, data ObjectData) error {
	var err error
	if r, ok := data.Reader(); ok {
		_, err = c.client.PutObject(ctx, c.bucket, key, r, -1, minio.PutObjectOptions{})
	} else if path, ok := data.Path(); ok {
		_, err = c.client.FPutObject(ctx, c.bucket, key, path, minio.PutObjectOptions{})
	} else {
		err = errNoDataSource
	}
	if err != nil {
		return &BackendError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (c *MinioClient) Delete(ctx context.Context, key string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return &BackendError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (c *MinioClient) List(ctx context.Context, prefix string) <-chan Object {
	ch := make(chan Object, 1)

	go func() {
		defer close(ch)

		listing := c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: true,
		})
		for info := range listing {
			if info.Err != nil {
				ch <- Object{Err: &BackendError{Op: "list", Err: info.Err}}
				return
			}
			entry := Object{
				Key:          info.Key,
				Size:         info.Size,
				LastModified: info.LastModified,
			}
			select {
			case ch <- entry:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

func isMinioNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey"
}

var errBucketMissing = errors.New("bucket does not exist")
