package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"skill-tracker-backend/config"
	s3client "skill-tracker-backend/s3"
)

type Provider interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	GetFile(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		bucketName: config.Conf.S3.BucketName,
	}
}

type impl struct {
	bucketName string
}

func (i impl) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	if s3client.Client == nil {
		return errors.New("S3 клиент не инициализирован")
	}
	err := i.makeBucket(ctx)
	if err != nil {
		return errors.Wrap(err, "ошибка создания бакета")
	}
	reader := bytes.NewReader(body)
	_, err = s3client.Client.PutObject(ctx, i.bucketName, key, reader, int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения файла в S3")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	if s3client.Client == nil {
		return nil, errors.New("S3 клиент не инициализирован")
	}
	object, err := s3client.Client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, nil
}

func (i impl) Delete(ctx context.Context, key string) error {
	if s3client.Client == nil {
		return errors.New("S3 клиент не инициализирован")
	}
	err := s3client.Client.RemoveObject(ctx, i.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из S3")
	}
	return nil
}

func (i impl) makeBucket(ctx context.Context) error {
	exists, err := s3client.Client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s3client.Client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{})
}
