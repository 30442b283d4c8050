package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
	SourceMemory   = "memory"

	defaultSourceTimeout = 10 * time.Second
)

type SourceConfig struct {
	SourceKind string        `yaml:"kind"`
	URL        string        `yaml:"base-url"`
	Timeout    time.Duration `yaml:"timeout"`
}

func (s *SourceConfig) validate() error {
	switch s.Kind() {
	case SourceHTTP:
		if s.URL == "" {
			return errors.New("base-url is required for http source")
		}
	case SourcePostgres, SourceMemory:
	default:
		return errors.Errorf("unknown source kind %q", s.SourceKind)
	}
	return nil
}

func (s *SourceConfig) Kind() string {
	if s.SourceKind == "" {
		return SourceHTTP
	}
	return s.SourceKind
}

func (s *SourceConfig) BaseURL() string {
	return s.URL
}

func (s *SourceConfig) RequestTimeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultSourceTimeout
	}
	return s.Timeout
}
