package utils

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/juju/errors"
)

// S3ImageStore uploads product images to a public-read S3 bucket.
type S3ImageStore struct {
	uploader *manager.Uploader
	bucket   string
}

// NewS3ImageStore builds an uploader from the default AWS credential chain.
func NewS3ImageStore(ctx context.Context, bucket string) (*S3ImageStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "loading AWS config")
	}
	client := s3.NewFromConfig(cfg)
	return &S3ImageStore{uploader: manager.NewUploader(client), bucket: bucket}, nil
}

func (s *S3ImageStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Annotatef(err, "uploading %s to bucket %s", key, s.bucket)
	}
	return result.Location, nil
}
