package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// =========================================================
// ARQUIVAMENTO DE RELATÓRIOS EM S3
// =========================================================

// Uploader guarda uma cópia dos relatórios gerados em lote num bucket
// S3, organizada por usuário. Sem bucket configurado vira um no-op.
type Uploader struct {
	client *s3.Client
	bucket string
}

type Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func NewUploader(cfg Config) *Uploader {
	if cfg.Bucket == "" {
		return &Uploader{}
	}
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	return &Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}
}

func (u *Uploader) Enabled() bool {
	return u != nil && u.client != nil
}

// Store grava o PDF em relatorios/<userID>/<filename>.
func (u *Uploader) Store(ctx context.Context, userID, filename string, pdf []byte) error {
	if !u.Enabled() {
		return nil
	}
	key := fmt.Sprintf("relatorios/%s/%s", userID, filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("archive: enviar %s: %w", key, err)
	}
	return nil
}
