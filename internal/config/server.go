package config

const defaultListenAddr = ":8080"

type ServerConfig struct {
	Addr    string   `yaml:"listen"`
	Origins []string `yaml:"allowed-origins"`
}

func (s *ServerConfig) ListenAddr() string {
	if s.Addr == "" {
		return defaultListenAddr
	}
	return s.Addr
}

func (s *ServerConfig) AllowedOrigins() []string {
	return s.Origins
}
