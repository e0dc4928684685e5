package wordcount

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config представляет файл настроек wordcount.
// Указатели отличают "не задано" от пустого значения.
type Config struct {
	Punctuation *string `yaml:"punctuation"`
	Lowercase   *bool   `yaml:"lowercase"`
	Format      string  `yaml:"format"`
	Output      string  `yaml:"output"`
	MetricsFile string  `yaml:"metrics_file"`
}

// LoadConfig загружает конфигурацию из YAML файла
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	// Пустой файл — пустая конфигурация
	if len(data) == 0 {
		return &config, nil
	}

	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &config, nil
}

// Sanitizer строит Sanitizer поверх значений по умолчанию.
func (c *Config) Sanitizer() Sanitizer {
	s := DefaultSanitizer
	if c == nil {
		return s
	}
	if c.Punctuation != nil {
		s.Punctuation = *c.Punctuation
	}
	if c.Lowercase != nil {
		s.Lowercase = *c.Lowercase
	}
	return s
}
