package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"http_server"`
	Database      DatabaseConfig      `envconfig:"database"`
	Redis         RedisConfig         `envconfig:"redis"`
	MessageStream MessageStreamConfig `envconfig:"message_stream"`
	HttpClient    HttpClientConfig    `envconfig:"http_client"`
	UserService   UserServiceConfig   `envconfig:"user_service"`
	EventService  EventServiceConfig  `envconfig:"event_service"`
	Gateway       GatewayConfig       `envconfig:"gateway"`
	Fee           FeeConfig           `envconfig:"fee"`
	Mailer        MailerConfig        `envconfig:"mailer"`
}

type HttpServerConfig struct {
	Port string `envconfig:"port" default:"8081"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"host" default:"localhost"`
	Port     string `envconfig:"port" default:"5432"`
	User     string `envconfig:"user" default:"postgres"`
	Password string `envconfig:"password" default:"postgres"`
	Name     string `envconfig:"name" default:"ticketing"`
	SSLMode  string `envconfig:"ssl_mode" default:"disable"`
}

type RedisConfig struct {
	Host     string `envconfig:"host" default:"localhost"`
	Port     string `envconfig:"port" default:"6379"`
	Password string `envconfig:"password" default:""`
	DB       int    `envconfig:"db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"host" default:"localhost"`
	Port     string `envconfig:"port" default:"5672"`
	User     string `envconfig:"user" default:"guest"`
	Password string `envconfig:"password" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"type" default:"consecutive"`
	Timeout             int     `envconfig:"timeout" default:"10"`
	ConsecutiveFailures int64   `envconfig:"consecutive_failures" default:"5"`
	ErrorRate           float64 `envconfig:"error_rate" default:"0.65"`
	MinSamples          int64   `envconfig:"min_samples" default:"10"`
}

type UserServiceConfig struct {
	Host string `envconfig:"host" default:"localhost"`
	Port string `envconfig:"port" default:"8080"`
}

type EventServiceConfig struct {
	Host     string `envconfig:"host" default:"localhost"`
	Port     string `envconfig:"port" default:"8082"`
	CacheTTL int    `envconfig:"cache_ttl" default:"60"`
}

// GatewayConfig holds the payment gateway credentials. ServerKey signs
// charge requests and is the shared secret for notification signatures.
type GatewayConfig struct {
	BaseURL         string `envconfig:"base_url" default:"https://api.sandbox.midtrans.com"`
	ServerKey       string `envconfig:"server_key"`
	ChargeExpiry    int    `envconfig:"charge_expiry" default:"15"` // minutes
	Channel         string `envconfig:"channel" default:"qris"`
	AcquirerTimeout int    `envconfig:"acquirer_timeout" default:"10"` // seconds
}

// FeeConfig pins the authoritative admin fee policy: 2% with a 1000 IDR
// floor, rounded up to the nearest 100.
type FeeConfig struct {
	Rate    float64 `envconfig:"rate" default:"0.02"`
	Minimum int64   `envconfig:"minimum" default:"1000"`
}

type MailerConfig struct {
	Host     string `envconfig:"host" default:"localhost"`
	Port     int    `envconfig:"port" default:"465"`
	User     string `envconfig:"user"`
	Password string `envconfig:"password"`
	Sender   string `envconfig:"sender" default:"tickets@cermin.id"`
}

func InitConfig() *Config {
	cfg := &Config{}
	envconfig.MustProcess("", cfg)
	return cfg
}
