package config

type TracingConfig struct {
	Enable  bool   `yaml:"enabled"`
	Service string `yaml:"service-name"`
}

func (t *TracingConfig) Enabled() bool {
	return t.Enable
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}
