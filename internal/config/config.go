package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// backlink data provider, gap analysis engine and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// A synchronous analysis fans out provider fetches, so this is more generous
		// than a typical CRUD endpoint would need.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"linkgap" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Provider contains backlink data provider client configurations
	Provider struct {
		// Token is the provider API key
		Token string `env:"PROVIDER_TOKEN" yaml:"token"`
		// RequestTimeout bounds a single provider HTTP request
		RequestTimeout time.Duration `env:"PROVIDER_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
	} `yaml:"provider"`

	// Gap contains gap analysis engine configurations
	Gap struct {
		// FetchLimit caps the referring domains fetched per site
		FetchLimit int `env:"GAP_FETCH_LIMIT" env-default:"5000" yaml:"fetchLimit"`
		// FetchTimeout bounds a single profile fetch within the aggregation fan-out
		FetchTimeout time.Duration `env:"GAP_FETCH_TIMEOUT" env-default:"30s" yaml:"fetchTimeout"`
		// MaxConcurrentFetches bounds the aggregation fan-out width
		MaxConcurrentFetches int `env:"GAP_MAX_CONCURRENT_FETCHES" env-default:"4" yaml:"maxConcurrentFetches"`
		// CompetitorLimit caps how many competitors discovery may return
		CompetitorLimit int `env:"GAP_COMPETITOR_LIMIT" env-default:"10" yaml:"competitorLimit"`
		// Country is the default country code for competitor discovery
		Country string `env:"GAP_COUNTRY" env-default:"us" yaml:"country"`
		// MinCompetitorsLinked is the minimum number of competitors a domain
		// must link to before it counts as a gap
		MinCompetitorsLinked int `env:"GAP_MIN_COMPETITORS_LINKED" env-default:"2" yaml:"minCompetitorsLinked"`
		// HighAuthorityRating is the domain rating at or above which a gap
		// domain counts as high authority
		HighAuthorityRating float64 `env:"GAP_HIGH_AUTHORITY_RATING" env-default:"50" yaml:"highAuthorityRating"`
		// SevereGapCount and ModerateGapCount are the starvation classifier
		// thresholds applied to the high-authority gap count
		SevereGapCount   int `env:"GAP_SEVERE_GAP_COUNT" env-default:"50" yaml:"severeGapCount"`
		ModerateGapCount int `env:"GAP_MODERATE_GAP_COUNT" env-default:"20" yaml:"moderateGapCount"`
		// CacheTTL is how long a computed analysis is served from the cache
		CacheTTL time.Duration `env:"GAP_CACHE_TTL" env-default:"168h" yaml:"cacheTTL"`
	} `yaml:"gap"`

	// JWT holds the RS256 key pair used to sign and verify API tokens
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key (only needed by the jwt command)
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used by the API server
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
