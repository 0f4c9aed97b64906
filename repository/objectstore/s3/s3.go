package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
)

type s3Repo struct {
	client *s3.Client
	bucket string
	region string
}

// CreateS3Repo builds the client once at startup; request handling
// shares it read-only.
func CreateS3Repo(ctx context.Context, awsAccessKeyID, awsSecretAccessKey, bucket, region string) (domain.ObjectStoreRepo, error) {
	cfg, err := awsConfig.LoadDefaultConfig(
		ctx,
		awsConfig.WithRegion(region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(awsAccessKeyID, awsSecretAccessKey, "")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "load default config failed")
	}

	return &s3Repo{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (s *s3Repo) Upload(ctx context.Context, fileReader io.Reader, key string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   fileReader,
	})
	if err != nil {
		return errors.Wrap(err, "put object failed")
	}
	return nil
}

func (s *s3Repo) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrap(err, "delete object failed")
	}
	return nil
}

func (s *s3Repo) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
