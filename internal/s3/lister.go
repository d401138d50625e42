// Package s3 предоставляет получение списка песен из бакета Amazon S3
package s3

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
	Prefix     string
}

// ListObjectsAPI — часть клиента S3, нужная для обхода объектов бакета
type ListObjectsAPI interface {
	ListObjectsV2PagesWithContext(ctx aws.Context, input *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool, opts ...request.Option) error
}

// Lister перечисляет mp3 файлы в бакете
type Lister struct {
	client ListObjectsAPI
	config *Config
}

// NewLister создает Lister с клиентом AWS SDK
func NewLister(config *Config) (*Lister, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}

	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		)
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return NewListerWithClient(config, s3.New(sess)), nil
}

// NewListerWithClient создает Lister с заданным клиентом
func NewListerWithClient(config *Config, client ListObjectsAPI) *Lister {
	return &Lister{
		client: client,
		config: config,
	}
}

// ListTitles возвращает названия mp3 файлов бакета в порядке ключей
func (l *Lister) ListTitles(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(l.config.BucketName),
	}
	if l.config.Prefix != "" {
		input.Prefix = aws.String(l.config.Prefix)
	}

	var titles []string
	err := l.client.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, object := range page.Contents {
			if title, ok := TitleFromKey(aws.StringValue(object.Key)); ok {
				titles = append(titles, title)
			}
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка объектов бакета %s: %w", l.config.BucketName, err)
	}

	return titles, nil
}

// TitleFromKey извлекает название песни из ключа объекта.
// Ключи без расширения .mp3 пропускаются.
func TitleFromKey(key string) (string, bool) {
	name := path.Base(key)
	ext := path.Ext(name)
	if !strings.EqualFold(ext, ".mp3") {
		return "", false
	}

	title := strings.TrimSuffix(name, ext)
	if title == "" {
		return "", false
	}
	return title, true
}
