package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	EnvLocal       = "local"
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultListenAddr      = ":50051"
	defaultMetricsAddr     = ":9090"
	defaultShutdownTimeout = 10 * time.Second
	defaultFilePath        = "data"
	defaultSQLitePath      = "data/onboarding.db"
	defaultServiceName     = "onboarding"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Env       string          `yaml:"env"       env:"ONBOARDING_ENV"`
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig は gRPC サーバーと監視用 HTTP サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr         string        `yaml:"listen_addr"      env:"ONBOARDING_LISTEN_ADDR"`
	MetricsAddr        string        `yaml:"metrics_addr"     env:"ONBOARDING_METRICS_ADDR"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout" env:"ONBOARDING_SHUTDOWN_TIMEOUT"`
}

// StorageConfig は社員コレクションの保存先に関する設定です。
type StorageConfig struct {
	// Driver は file / sqlite / postgres のいずれかです。
	Driver string `yaml:"driver" env:"ONBOARDING_STORAGE_DRIVER"`
	// Path は file ではディレクトリ、sqlite ではデータベースファイルです。
	Path string `yaml:"path" env:"ONBOARDING_STORAGE_PATH"`
	// Key はスロットのキーです。
	Key string `yaml:"key" env:"ONBOARDING_STORAGE_KEY"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"               env:"ONBOARDING_DB_HOST"`
	Port               int           `yaml:"port"               env:"ONBOARDING_DB_PORT"`
	User               string        `yaml:"user"               env:"ONBOARDING_DB_USER"`
	Password           string        `yaml:"password"           env:"ONBOARDING_DB_PASSWORD"`
	Name               string        `yaml:"name"               env:"ONBOARDING_DB_NAME"`
	SSLMode            string        `yaml:"ssl_mode"           env:"ONBOARDING_DB_SSL_MODE"`
	MaxOpenConns       int           `yaml:"max_open_conns"     env:"ONBOARDING_DB_MAX_OPEN_CONNS"`
	MaxIdleConns       int           `yaml:"max_idle_conns"     env:"ONBOARDING_DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"  env:"ONBOARDING_DB_CONN_MAX_LIFETIME"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time" env:"ONBOARDING_DB_CONN_MAX_IDLE_TIME"`
}

// TelemetryConfig はトレース送信に関する設定です。Endpoint が空なら無効です。
type TelemetryConfig struct {
	Endpoint    string `yaml:"otlp_endpoint" env:"ONBOARDING_OTEL_ENDPOINT"`
	ServiceName string `yaml:"service_name"  env:"ONBOARDING_OTEL_SERVICE_NAME"`
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数で上書きします。
// path が空の場合はファイルを読まず、既定値と環境変数のみを使います。
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// PathFromEnv はフラグ値・CONFIG_PATH の順に設定ファイルのパスを決めます。
func PathFromEnv(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}

func (c *Config) validateAndNormalize() error {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	switch c.Env {
	case "":
		c.Env = EnvLocal
	case EnvLocal, EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("config: env must be one of local, development, production: %q", c.Env)
	}

	if err := c.Server.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Storage.validateAndNormalize(); err != nil {
		return err
	}

	if c.Storage.Driver == DriverPostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = defaultServiceName
	}

	return nil
}

func (s *ServerConfig) validateAndNormalize() error {
	if s.ListenAddr == "" {
		s.ListenAddr = defaultListenAddr
	}
	if s.MetricsAddr == "" {
		s.MetricsAddr = defaultMetricsAddr
	}

	timeout, err := parseDurationAllowEmpty(s.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}
	s.ShutdownTimeout = timeout

	return nil
}

func (s *StorageConfig) validateAndNormalize() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case "":
		s.Driver = DriverFile
	case DriverFile, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("config: storage.driver must be one of file, sqlite, postgres: %q", s.Driver)
	}

	if s.Path == "" {
		switch s.Driver {
		case DriverFile:
			s.Path = defaultFilePath
		case DriverSQLite:
			s.Path = defaultSQLitePath
		}
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。ユーザー名とパスワードはエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
