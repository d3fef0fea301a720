package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/utils"
	"github.com/MKhiriev/go-item-sync/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultS3Region = "us-east-1"

// s3BlobStore keeps snapshot blobs as objects in one bucket.
type s3BlobStore struct {
	client *s3.Client
	bucket string
	prefix string
	keys   keyGenerator

	logger *logger.Logger
}

// NewS3BlobStore constructs a [BlobStore] backed by an S3-compatible bucket.
// A custom Endpoint switches the client to path-style addressing so MinIO
// and similar servers work. The SDK's own retries are disabled.
func NewS3BlobStore(ctx context.Context, remoteCfg config.ClientRemote, logger *logger.Logger) (BlobStore, error) {
	region := remoteCfg.Region
	if region == "" {
		region = defaultS3Region
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithRetryMaxAttempts(1),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if remoteCfg.RequestTimeout > 0 {
		awsCfg.HTTPClient = awshttp.NewBuildableClient().WithTimeout(remoteCfg.RequestTimeout)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if remoteCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(remoteCfg.Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &s3BlobStore{
		client: client,
		bucket: remoteCfg.Bucket,
		prefix: remoteCfg.Prefix,
		keys:   utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// Upload implements [BlobStore].
func (b *s3BlobStore) Upload(ctx context.Context, blob []byte, creds models.Credentials) (string, error) {
	key := joinKey(b.prefix, b.keys.Generate())

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(blob),
		ContentLength: aws.Int64(int64(len(blob))),
		ContentType:   aws.String("application/octet-stream"),
	}, withCredentials(creds))
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, mapS3Error(err))
	}

	b.logger.Debug().Str("func", "s3BlobStore.Upload").Str("bucket", b.bucket).Str("key", key).Int("bytes", len(blob)).Msg("blob uploaded")
	return key, nil
}

// Download implements [BlobStore].
func (b *s3BlobStore) Download(ctx context.Context, key string, creds models.Credentials) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	result, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}, withCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, mapS3Error(err))
	}
	defer result.Body.Close()

	blob, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object %s: %w", ErrUnavailable, key, err)
	}

	return blob, nil
}

// withCredentials overrides the default credential chain for one call when
// static keys are supplied.
func withCredentials(creds models.Credentials) func(*s3.Options) {
	return func(o *s3.Options) {
		if creds.AccessKey == "" || creds.SecretKey == "" {
			return
		}
		o.Credentials = credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, "")
	}
}
