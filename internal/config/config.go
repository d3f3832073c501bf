// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional config blocks (uploads, cache, observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
//
// A double underscore separates nesting levels:
//
//	GRAMPANCHAYAT_DATABASE__HOST -> database.host -> Config.Database.Host
//	GRAMPANCHAYAT_AUTH__JWT_SECRET -> auth.jwt_secret -> Config.Auth.JWTSecret
const EnvPrefix = "GRAMPANCHAYAT_"

// ServiceName is the fixed name this service reports to logs and APM.
const ServiceName = "grampanchayat-backend"

// Config is the root configuration object for the application.
//
// Pointer blocks are optional. When they are missing, defaults are injected
// by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Admin         AdminConfig          `koanf:"admin"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Upload        *UploadConfig        `koanf:"upload"`
	Cache         *CacheConfig         `koanf:"cache"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For. When
	// empty the client IP is the connection's remote address.
	TrustedProxies []string `koanf:"trusted_proxies" validate:"dive,cidr"`
	// BodyLimit is an echo size string such as "12M".
	BodyLimit string `koanf:"body_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig configures access tokens and the login rate limit.
type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret" validate:"required,min=16"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
	Issuer    string        `koanf:"issuer"`
	// LoginRatePerMinute is the number of login attempts allowed per client IP per minute.
	LoginRatePerMinute int `koanf:"login_rate_per_minute"`
}

// StorageConfig points at the Supabase storage API.
type StorageConfig struct {
	URL        string `koanf:"url" validate:"required,url"`
	ServiceKey string `koanf:"service_key" validate:"required"`
	Bucket     string `koanf:"bucket"`
}

// AdminConfig is the bootstrap administrator created on first start.
type AdminConfig struct {
	Email    string `koanf:"email" validate:"omitempty,email"`
	Password string `koanf:"password"`
}

// IntegrationConfig holds third-party API credentials.
// An empty ResendAPIKey disables outgoing email.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
	AdminURL     string `koanf:"admin_url"`
}

// UploadConfig bounds multipart uploads, in bytes.
type UploadConfig struct {
	MaxImageSize    int64 `koanf:"max_image_size" validate:"min=1"`
	MaxDocumentSize int64 `koanf:"max_document_size" validate:"min=1"`
}

// CacheConfig controls the public content cache.
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl" validate:"min=0"`
}

const (
	defaultBucket           = "grampanchayat-files"
	defaultTokenTTL         = 7 * 24 * time.Hour
	defaultIssuer           = "grampanchayat"
	defaultLoginRate        = 10
	defaultBodyLimit        = "12M"
	defaultAdminEmail       = "admin@grampanchayat.gov.in"
	defaultAdminPassword    = "admin123"
	defaultEmailFrom        = "Grampanchayat <onboarding@resend.dev>"
	defaultMaxImageSize     = 5 * 1024 * 1024
	defaultMaxDocumentSize  = 10 * 1024 * 1024
	defaultPublicContentTTL = 5 * time.Minute
)

// DefaultUploadConfig returns the 5 MB image / 10 MB document limits.
func DefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxImageSize:    defaultMaxImageSize,
		MaxDocumentSize: defaultMaxDocumentSize,
	}
}

// DefaultCacheConfig returns the public content cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{TTL: defaultPublicContentTTL}
}

// listKeys are the config keys whose env values hold comma separated lists.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"server.trusted_proxies":             true,
	"observability.health_checks.checks": true,
}

// envKey maps GRAMPANCHAYAT_SERVER__CORS_ALLOWED_ORIGINS to server.cors_allowed_origins.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// envValue maps an env variable to its config key and splits list values.
func envValue(name, value string) (string, any) {
	key := envKey(name)
	if !listKeys[key] {
		return key, value
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// applyDefaults fills optional values that were not provided.
func (c *Config) applyDefaults() {
	if c.Server.BodyLimit == "" {
		c.Server.BodyLimit = defaultBodyLimit
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = defaultBucket
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = defaultIssuer
	}
	if c.Auth.LoginRatePerMinute == 0 {
		c.Auth.LoginRatePerMinute = defaultLoginRate
	}
	if c.Admin.Email == "" {
		c.Admin.Email = defaultAdminEmail
	}
	if c.Admin.Password == "" && !c.IsProduction() {
		c.Admin.Password = defaultAdminPassword
	}
	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = defaultEmailFrom
	}
	if c.Upload == nil {
		c.Upload = DefaultUploadConfig()
	}
	if c.Cache == nil {
		c.Cache = DefaultCacheConfig()
	}
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces agree with each other.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
}

// Validate runs the struct tag rules and the observability rules.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Observability != nil {
		if err := c.Observability.Validate(); err != nil {
			return fmt.Errorf("invalid observability config: %w", err)
		}
	}

	if c.IsProduction() && c.Admin.Password == "" {
		return fmt.Errorf("admin password is required in production")
	}

	if c.Auth.TokenTTL < time.Minute {
		return fmt.Errorf("auth token_ttl must be at least 1m, got %s", c.Auth.TokenTTL)
	}

	return nil
}

// IsProduction reports whether the app serves the live website.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}

// IsLocal reports whether the app runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
