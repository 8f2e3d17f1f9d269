package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	appconfig "tyjk-club-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// referenceTTL 预签名访问 URL 的有效期（约 1 年）
const referenceTTL = 365 * 24 * time.Hour

// S3 对象存储后端，引用为长期预签名 GET URL
type S3 struct {
	client   *s3.Client
	uploader *manager.Uploader
	presign  *s3.PresignClient
	bucket   string
	prefix   string
}

func NewS3(ctx context.Context, cfg appconfig.S3) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket 未配置")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化 S3 客户端失败: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3{
		client:   client,
		uploader: manager.NewUploader(client),
		presign:  s3.NewPresignClient(client),
		bucket:   cfg.Bucket,
		prefix:   strings.Trim(cfg.Prefix, "/"),
	}, nil
}

func (s *S3) Store(ctx context.Context, data []byte, contentType, originalName, folder string) (*StoredFile, error) {
	if err := validate(data, contentType); err != nil {
		return nil, err
	}
	folder, err := normalizeFolder(folder)
	if err != nil {
		return nil, err
	}

	fileName := generateFileName(originalName)
	key := strings.TrimLeft(path.Join(s.prefix, folder, fileName), "/")

	if _, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}); err != nil {
		return nil, fmt.Errorf("上传到 S3 失败: %w", err)
	}

	// 私有桶通过预签名 URL 访问
	presigned, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = referenceTTL
	})
	if err != nil {
		return nil, fmt.Errorf("生成预签名 URL 失败: %w", err)
	}

	return &StoredFile{
		URL:      presigned.URL,
		Path:     key,
		FileName: fileName,
	}, nil
}

// Delete 删除对象，S3 对不存在的 key 删除本身即幂等
func (s *S3) Delete(ctx context.Context, filePath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimLeft(filePath, "/")),
	})
	return err
}
