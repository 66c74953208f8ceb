package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
)

// ObjectAPI is the part of the S3 client the store uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client    ObjectAPI
	bucket    string
	publicURL string
	logger    *zap.Logger
}

// NewS3Store connects to the bucket in conf. A custom endpoint switches to
// path style addressing so MinIO and similar servers work.
func NewS3Store(ctx context.Context, conf configs.Media, logger *zap.Logger) (*S3Store, error) {
	options := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(conf.S3.Region)}
	if conf.S3.AccessKey != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.S3.AccessKey, conf.S3.SecretKey, "")))
	}

	awsConf, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConf, func(o *s3.Options) {
		if conf.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StoreWithClient(client, conf.S3, logger), nil
}

func NewS3StoreWithClient(client ObjectAPI, conf configs.S3, logger *zap.Logger) *S3Store {
	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", conf.Bucket, conf.Region)
	if conf.Endpoint != "" {
		publicURL = strings.TrimSuffix(conf.Endpoint, "/") + "/" + conf.Bucket + "/"
	}

	return &S3Store{client: client, bucket: conf.Bucket, publicURL: publicURL, logger: logger}
}

func (s *S3Store) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		s.logger.Error("error uploading media", zap.String("bucket", s.bucket), zap.String("key", key), zap.Error(err))

		return "", err
	}

	return s.publicURL + key, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	return err
}

func (s *S3Store) Key(url string) string {
	key, found := strings.CutPrefix(url, s.publicURL)
	if !found {
		return ""
	}

	return key
}
