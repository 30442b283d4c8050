package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-splitter/internal/model/settlement"
)

const fullConfig = `
app:
  participants: [Ann, Ben]
  currency-symbol: "$"
telegram:
  token: secret
  notify-chat-id: 42
source:
  kind: http
  base-url: http://localhost:3001
  timeout: 3s
kafka:
  brokers: [localhost:9092]
  consumer-group: notifier
  expenses-topic: expenses
server:
  listen: ":9000"
memcached:
  hosts: [localhost:11211]
  ttl: 30s
postgres:
  host: db
  port: 6432
  sslmode: require
`

func Test_OnParse_ShouldReadAllSections(t *testing.T) {
	cfg, err := Parse([]byte(fullConfig))

	require.NoError(t, err)
	assert.Equal(t, settlement.Pair{First: "Ann", Second: "Ben"}, cfg.App().Pair())
	assert.Equal(t, "$", cfg.App().CurrencySymbol())
	assert.Equal(t, "secret", cfg.Telegram().Token())
	assert.Equal(t, int64(42), cfg.Telegram().ChatID())
	assert.Equal(t, SourceHTTP, cfg.Source().Kind())
	assert.Equal(t, 3*time.Second, cfg.Source().RequestTimeout())
	assert.True(t, cfg.Kafka().Enabled())
	assert.True(t, cfg.Memcached().Enabled())
	assert.Equal(t, 30*time.Second, cfg.Memcached().TTL())
	assert.Equal(t, 6432, cfg.Postgres().Port())
	assert.Equal(t, "require", cfg.Postgres().SSLMode())
	assert.Equal(t, ":9000", cfg.Server().ListenAddr())
}

func Test_OnParseEmpty_ShouldFallBackToDefaults(t *testing.T) {
	cfg, err := Parse([]byte("source:\n  kind: memory\n"))

	require.NoError(t, err)
	assert.Equal(t, settlement.DefaultPair, cfg.App().Pair())
	assert.Equal(t, "₹", cfg.App().CurrencySymbol())
	assert.Equal(t, defaultSourceTimeout, cfg.Source().RequestTimeout())
	assert.Equal(t, defaultListenAddr, cfg.Server().ListenAddr())
	assert.False(t, cfg.Kafka().Enabled())
	assert.False(t, cfg.Memcached().Enabled())
	assert.Equal(t, defaultCacheTTL, cfg.Memcached().TTL())
	assert.Equal(t, defaultPostgresPort, cfg.Postgres().Port())
	assert.Equal(t, defaultPostgresSSLMode, cfg.Postgres().SSLMode())
}

func Test_OnParse_ShouldRejectInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"three participants": "app:\n  participants: [a, b, c]\nsource:\n  kind: memory\n",
		"same participants":  "app:\n  participants: [a, a]\nsource:\n  kind: memory\n",
		"http without url":   "source:\n  kind: http\n",
		"unknown source":     "source:\n  kind: ftp\n",
		"broken yaml":        "app: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func Test_OnNew_ShouldReadPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o600))
	t.Setenv(configPathEnvKey, path)

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001", cfg.Source().BaseURL())
}

func Test_OnNewFromMissingFile_ShouldFail(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
