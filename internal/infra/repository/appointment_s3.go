package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// S3API is the part of the S3 client the blob repository needs.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Options struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client builds a client from static credentials. A custom endpoint
// switches to path-style addressing for S3-compatible servers.
func NewS3Client(opts S3Options) *s3.Client {
	return s3.New(s3.Options{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
	}, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
}

// AppointmentS3Repository stores the appointment list as one JSON object.
type AppointmentS3Repository struct {
	client S3API
	bucket string
	key    string
}

func NewAppointmentS3Repository(client S3API, bucket, key string) *AppointmentS3Repository {
	if key == "" {
		key = DefaultRedisStoreKey + ".json"
	}
	return &AppointmentS3Repository{client: client, bucket: bucket, key: key}
}

func (r *AppointmentS3Repository) Load(ctx context.Context) ([]domain.Appointment, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return []domain.Appointment{}, nil
		}
		return nil, fmt.Errorf("s3 get %s/%s: %w", r.bucket, r.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %s/%s: %w", r.bucket, r.key, err)
	}
	return decodeBlob(data)
}

func (r *AppointmentS3Repository) Save(ctx context.Context, aps []domain.Appointment) error {
	data, err := encodeBlob(aps)
	if err != nil {
		return err
	}
	if _, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", r.bucket, r.key, err)
	}
	return nil
}

var _ domain.Repository = (*AppointmentS3Repository)(nil)
