package config

import "time"

const defaultCacheTTL = time.Minute

type MemcachedConfig struct {
	NodeHosts []string      `yaml:"hosts"`
	EntryTTL  time.Duration `yaml:"ttl"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

// Enabled reports whether the record list should be cached.
func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}

// TTL bounds how long a cached record list may be served.
func (s *MemcachedConfig) TTL() time.Duration {
	if s.EntryTTL <= 0 {
		return defaultCacheTTL
	}
	return s.EntryTTL
}
