// Package s3sink publishes rendered images to an S3 bucket.
package s3sink

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/oklog/ulid/v2"

	"github.com/user/shotframe/pkg/ports"
)

// PutObjectAPI is the part of the S3 client the sink uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Sink uploads images under bucket/prefix. Each key carries a ULID
// directory so repeated names never overwrite each other.
type Sink struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// New creates a Sink on an existing client.
func New(client PutObjectAPI, bucket, prefix string) *Sink {
	return &Sink{client: client, bucket: bucket, prefix: prefix}
}

// NewFromEnv creates a Sink with the default AWS credential chain.
// An empty region keeps the region from the environment.
func NewFromEnv(ctx context.Context, bucket, prefix, region string) (*Sink, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// Save uploads data and returns the s3:// location.
func (s *Sink) Save(ctx context.Context, filename string, data []byte, mime string) (string, error) {
	if filename == "" || path.Base(filename) != filename || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid file name %q", filename)
	}
	key := path.Join(s.prefix, ulid.Make().String(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mime),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

var _ ports.ImageSink = (*Sink)(nil)
