package config

const (
	defaultPostgresPort    = 5432
	defaultPostgresSSLMode = "disable"
)

// PostgresConfig describes the expenses database of the postgres source.
type PostgresConfig struct {
	Hostname string `yaml:"host"`
	PortNum  int    `yaml:"port"`
	Db       string `yaml:"db"`
	User     string `yaml:"username"`
	Pswd     string `yaml:"password"`
	SSL      string `yaml:"sslmode"`
}

func (s *PostgresConfig) Host() string {
	return s.Hostname
}

func (s *PostgresConfig) Port() int {
	if s.PortNum <= 0 {
		return defaultPostgresPort
	}
	return s.PortNum
}

func (s *PostgresConfig) Database() string {
	return s.Db
}

func (s *PostgresConfig) Username() string {
	return s.User
}

func (s *PostgresConfig) Password() string {
	return s.Pswd
}

func (s *PostgresConfig) SSLMode() string {
	if s.SSL == "" {
		return defaultPostgresSSLMode
	}
	return s.SSL
}
