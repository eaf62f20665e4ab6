package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	S3        S3Config        `mapstructure:"s3"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Root      RootConfig      `mapstructure:"root"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // gin mode: debug | release | test
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type S3Config struct {
	Endpoint      string `mapstructure:"endpoint"`
	Region        string `mapstructure:"region"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	UsePathStyle  bool   `mapstructure:"use_path_style"`
}

type AuthConfig struct {
	// ProjectReference identifies the hosted auth project; APIKey is its
	// public (anon) key. Access tokens presented by admin clients are
	// verified against this project.
	ProjectReference string `mapstructure:"project_reference"`
	APIKey           string `mapstructure:"api_key"`
}

type RabbitMQConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	URL          string `mapstructure:"url"`
	ExchangeName string `mapstructure:"exchange_name"`
	RoutingKey   struct {
		LeadConsultation string `mapstructure:"lead_consultation"`
		LeadMessage      string `mapstructure:"lead_message"`
	} `mapstructure:"routing_key"`
}

type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	OtlpEndpoint string `mapstructure:"otlp_endpoint"`
}

type RootConfig struct {
	// BootstrapAdminEmail is promoted to the admin role at startup if a
	// matching profile exists. Signup itself is owned by the auth provider.
	BootstrapAdminEmail string `mapstructure:"bootstrap_admin_email"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("FORMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional; env vars alone are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "forma-api")
	v.SetDefault("app.addr", ":8080")
	v.SetDefault("app.mode", "release")

	v.SetDefault("log.level", "info")

	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "forma-media")

	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.exchange_name", "forma.leads")
	v.SetDefault("rabbitmq.routing_key.lead_consultation", "lead.consultation")
	v.SetDefault("rabbitmq.routing_key.lead_message", "lead.message")

	v.SetDefault("telemetry.enabled", false)
}
