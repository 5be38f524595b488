package storage

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

const BackendS3 = "s3"

func init() {
	register(BackendS3, func(ctx context.Context, cfg Config, creds *Credentials, logger *zap.Logger) (Client, error) {
		return NewS3Client(ctx, cfg, creds, logger)
	})
}

// S3Client accesses object storage through the AWS SDK.
type S3Client struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// NewS3Client builds an S3 client from explicit credentials, or the default
// chain (environment, shared config, instance profile) when creds is nil,
// and verifies the bucket is reachable.
func NewS3Client(ctx context.Context, cfg Config, creds *Credentials, logger *zap.Logger) (*S3Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if creds != nil {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &ConnectionError{Backend: BackendS3, Bucket: cfg.Bucket, Err: err}
	}

	clientOpts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, clientOpts...)

	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(cfg.Bucket)}); err != nil {
		return nil, &ConnectionError{Backend: BackendS3, Bucket: cfg.Bucket, Err: err}
	}

	return &S3Client{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

func (c *S3Client) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, &BackendError{Op: "get", Key: key, Err: err}
	}
	return result.Body, nil
}

func (c *S3Client) GetFile(ctx context.Context, key, localPath string) error {
	body, err := c.Get(ctx, key)
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

func (c *S3Client) Put(ctx context.Context, key string, data ObjectData) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}

	if r, ok := data.Reader(); ok {
		input.Body = r
	} else if path, ok := data.Path(); ok {
		f, err := os.Open(path)
		if err != nil {
			return &BackendError{Op: "put", Key: key, Err: err}
		}
		defer f.Close()
		input.Body = f
	} else {
		return &BackendError{Op: "put", Key: key, Err: errNoDataSource}
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return &BackendError{Op: "put", Key: key, Err: err}
	}
	return nil
}

// Delete uses the batch form, matching S3 semantics where removing an absent
// key still succeeds.
func (c *S3Client) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(c.bucket),
		Delete: &types.Delete{
			Objects: []types.ObjectIdentifier{{Key: aws.String(key)}},
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return &BackendError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (c *S3Client) List(ctx context.Context, prefix string) <-chan Object {
	ch := make(chan Object, 1)

	go func() {
		defer close(ch)

		input := &s3.ListObjectsV2Input{Bucket: aws.String(c.bucket)}
		if prefix != "" {
			input.Prefix = aws.String(prefix)
		}

		paginator := s3.NewListObjectsV2Paginator(c.client, input)
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				ch <- Object{Err: &BackendError{Op: "list", Err: err}}
				return
			}
			for _, obj := range page.Contents {
				entry := Object{
					Key:  aws.ToString(obj.Key),
					Size: aws.ToInt64(obj.Size),
				}
				if obj.LastModified != nil {
					entry.LastModified = *obj.LastModified
				}
				select {
				case ch <- entry:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch
}

// isNoSuchKey reports whether the error is the SDK's missing-object shape,
// either the typed NoSuchKey from GetObject or the bare 404 from HeadObject.
func isNoSuchKey(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	return errors.As(err, &notFound)
}

var errNoDataSource = errors.New("object data has no source")
