package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/restaurantes-api/internal/application/ports"
	"github.com/jhoicas/restaurantes-api/pkg/config"
)

var _ ports.BlobStorage = (*S3Storage)(nil)

// s3API subconjunto del cliente S3 que usa el adaptador.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage guarda archivos en un bucket compatible con S3 (AWS, Cloudflare R2, MinIO).
type S3Storage struct {
	client  s3API
	bucket  string
	baseURL string
}

// NewS3Storage construye el cliente a partir de la configuración.
// Con Endpoint vacío se usa el endpoint estándar de AWS para la región.
func NewS3Storage(ctx context.Context, cfg config.S3Config) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return newS3Storage(client, cfg.Bucket, baseURL), nil
}

func newS3Storage(client s3API, bucket, baseURL string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket, baseURL: baseURL}
}

func (s *S3Storage) Store(ctx context.Context, namespace string, content []byte, ext string) (string, error) {
	key := objectKey(namespace, ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(http.DetectContentType(content)),
	})
	if err != nil {
		return "", fmt.Errorf("subir %s: %w", key, err)
	}
	return key, nil
}

// Delete es idempotente: S3 responde 204 aunque la clave no exista.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	key = cleanKey(key)
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("eliminar %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) URL(key string) string {
	return publicURL(s.baseURL, key)
}
