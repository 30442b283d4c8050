package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnvKey  = "CONFIG_PATH"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Source    SourceConfig    `yaml:"source"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Server    ServerConfig    `yaml:"server"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the file named by CONFIG_PATH, data/config.yaml by default.
func New() (*Service, error) {
	path := os.Getenv(configPathEnvKey)
	if path == "" {
		path = defaultConfigFile
	}
	return NewFromFile(path)
}

func NewFromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	if err := s.config.App.validate(); err != nil {
		return nil, errors.Wrap(err, "app config")
	}
	if err := s.config.Source.validate(); err != nil {
		return nil, errors.Wrap(err, "source config")
	}
	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Source() *SourceConfig {
	return &s.config.Source
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Server() *ServerConfig {
	return &s.config.Server
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
