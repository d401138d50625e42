// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath — путь к файлу конфигурации по умолчанию
const DefaultPath = "~/.loopify"

// Config структура для хранения конфигурации приложения
type Config struct {
	// Песни, которыми заполняется плейлист при запуске
	Songs []string `yaml:"songs"`
	// Каталог с mp3 файлами, названия которых добавляются в плейлист
	ImportDir string `yaml:"import_dir"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	NoColor  bool   `yaml:"no_color"`

	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	AwsPrefix     string `yaml:"aws_prefix"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	config := &Config{}
	config.setDefaults()
	return config
}

// LoadConfig загружает конфигурацию приложения из указанного файла
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	config.setDefaults()

	// Раскрываем тильду в путях
	if config.ImportDir, err = ExpandHome(config.ImportDir); err != nil {
		return nil, err
	}
	if config.LogFile, err = ExpandHome(config.LogFile); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadOrDefault загружает конфигурацию, а при отсутствии файла возвращает значения по умолчанию
func LoadOrDefault(filePath string) (*Config, error) {
	config, err := LoadConfig(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

// HasBucket сообщает, настроен ли бакет S3 как источник песен
func (c *Config) HasBucket() bool {
	return c.AwsBucketName != ""
}

// setDefaults устанавливает значения по умолчанию, если они не заданы
func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.AwsRegion == "" {
		c.AwsRegion = "us-east-1"
	}
}

// ExpandHome заменяет ведущую тильду на домашний каталог пользователя
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}
