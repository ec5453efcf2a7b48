package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// NewS3Client initializes an S3-compatible client from the AWS_* environment
// (works with R2/MinIO via AWS_ENDPOINT).
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	endpoint := os.Getenv("AWS_ENDPOINT")
	region := os.Getenv("AWS_REGION")

	creds := credentials.NewStaticCredentialsProvider(
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return client, nil
}

type objectSource struct {
	client *s3.Client
	bucket string
	key    string
}

// Object returns a Source backed by an S3 object.
func Object(client *s3.Client, bucket, key string) Source {
	return &objectSource{client: client, bucket: bucket, key: key}
}

func (o *objectSource) Name() string {
	return "s3://" + o.bucket + "/" + o.key
}

func (o *objectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(o.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noKey) || errors.As(err, &noBucket) {
			return nil, fmt.Errorf("wordlist %q: %w", o.Name(), ErrNotFound)
		}
		return nil, fmt.Errorf("load wordlist %q: %w", o.Name(), err)
	}
	return out.Body, nil
}
