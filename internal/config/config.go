package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values are read from a YAML file and can be overridden with environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// Zero disables it, which the websocket stream relies on.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"0" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins accepted by CORS and the websocket upgrader. Empty allows any.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// TrustedProxies lists the CIDRs or addresses of reverse proxies whose
		// X-Forwarded-For and X-Real-IP headers are believed. Empty trusts none.
		TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" env-separator:"," yaml:"trustedProxies"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"labelchecker" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to issue and verify session tokens.
	JWT struct {
		// PublicKey is the PEM encoded RSA public key.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is how long issued session tokens stay valid.
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
		// Issuer is set as the iss claim.
		Issuer string `env:"JWT_ISSUER" env-default:"labelchecker" yaml:"issuer"`
	} `yaml:"jwt"`

	// Scanner configures the label scan pipeline.
	Scanner struct {
		// MaxAttempts is how many times a scan job is tried before the scan is marked failed.
		MaxAttempts int `env:"SCANNER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// MaxImageBytes is the largest accepted upload.
		MaxImageBytes int64 `env:"SCANNER_MAX_IMAGE_BYTES" env-default:"10485760" yaml:"maxImageBytes"`
		// MaxImagePixels bounds width*height of accepted uploads.
		MaxImagePixels int `env:"SCANNER_MAX_IMAGE_PIXELS" env-default:"40000000" yaml:"maxImagePixels"`
		// ModelMaxDimension is the longest edge images are downscaled to before they are sent to the model.
		ModelMaxDimension int `env:"SCANNER_MODEL_MAX_DIMENSION" env-default:"1568" yaml:"modelMaxDimension"`
		// Concurrency is the number of scan jobs processed in parallel by this instance.
		Concurrency int `env:"SCANNER_CONCURRENCY" env-default:"4" yaml:"concurrency"`
		// JobTimeout bounds a single scan attempt.
		JobTimeout time.Duration `env:"SCANNER_JOB_TIMEOUT" env-default:"3m" yaml:"jobTimeout"`
		// PresignTTL is how long presigned image URLs stay valid.
		PresignTTL time.Duration `env:"SCANNER_PRESIGN_TTL" env-default:"15m" yaml:"presignTTL"`
	} `yaml:"scanner"`

	// AI selects and configures the label analyzer backend.
	AI struct {
		// Provider is one of anthropic, bedrock or gemini.
		Provider string `env:"AI_PROVIDER" env-default:"anthropic" yaml:"provider"`
		// Model is the provider specific model identifier.
		Model string `env:"AI_MODEL" env-default:"claude-sonnet-4-20250514" yaml:"model"`
		// MaxTokens caps the generated report size.
		MaxTokens int `env:"AI_MAX_TOKENS" env-default:"4096" yaml:"maxTokens"`
		// Timeout bounds a single analyzer call.
		Timeout time.Duration `env:"AI_TIMEOUT" env-default:"2m" yaml:"timeout"`
		// AnthropicAPIKey authenticates against the Anthropic API.
		AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" yaml:"anthropicApiKey"`
		// AnthropicBaseURL overrides the Anthropic API endpoint.
		AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL" env-default:"https://api.anthropic.com" yaml:"anthropicBaseUrl"`
		// GeminiAPIKey authenticates against the Gemini API.
		GeminiAPIKey string `env:"GEMINI_API_KEY" yaml:"geminiApiKey"`
		// BedrockRegion is the AWS region used for Bedrock.
		BedrockRegion string `env:"AI_BEDROCK_REGION" env-default:"us-east-1" yaml:"bedrockRegion"`
	} `yaml:"ai"`

	// Storage configures the S3 compatible object store holding label images.
	Storage struct {
		// Endpoint points at a non-AWS S3 implementation such as MinIO. Empty uses AWS.
		Endpoint string `env:"STORAGE_ENDPOINT" yaml:"endpoint"`
		// Region is the bucket region.
		Region string `env:"STORAGE_REGION" env-default:"us-east-1" yaml:"region"`
		// Bucket holds uploaded label images.
		Bucket string `env:"STORAGE_BUCKET" env-default:"labels" yaml:"bucket"`
		// AccessKeyID and SecretAccessKey are static credentials. Empty uses the default AWS chain.
		AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID" yaml:"accessKeyId"`
		SecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		// UsePathStyle is required by MinIO.
		UsePathStyle bool `env:"STORAGE_USE_PATH_STYLE" env-default:"true" yaml:"usePathStyle"`
		// CreateBucket creates the bucket on startup when it does not exist.
		CreateBucket bool `env:"STORAGE_CREATE_BUCKET" env-default:"false" yaml:"createBucket"`
	} `yaml:"storage"`

	// Redis carries scan progress events between workers and websocket connections.
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// ChannelPrefix namespaces the pub/sub channels.
		ChannelPrefix string `env:"REDIS_CHANNEL_PREFIX" env-default:"labelchecker:scans:" yaml:"channelPrefix"`
	} `yaml:"redis"`

	// Stripe configures payments.
	Stripe struct {
		SecretKey     string `env:"STRIPE_SECRET_KEY" yaml:"secretKey"`
		WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" yaml:"webhookSecret"`
		// DeluxePriceID is the recurring price of the DELUXE plan.
		DeluxePriceID string `env:"STRIPE_DELUXE_PRICE_ID" yaml:"deluxePriceId"`
		// OneTimePriceID is the price of the ONE_TIME credit pack.
		OneTimePriceID string `env:"STRIPE_ONE_TIME_PRICE_ID" yaml:"oneTimePriceId"`
		// SuccessURL, CancelURL and PortalReturnURL are where Stripe sends the browser back to.
		SuccessURL      string `env:"STRIPE_SUCCESS_URL" env-default:"http://localhost:3000/billing?status=success" yaml:"successUrl"`
		CancelURL       string `env:"STRIPE_CANCEL_URL" env-default:"http://localhost:3000/billing?status=cancel" yaml:"cancelUrl"`
		PortalReturnURL string `env:"STRIPE_PORTAL_RETURN_URL" env-default:"http://localhost:3000/billing" yaml:"portalReturnUrl"`
	} `yaml:"stripe"`

	// Mail configures outgoing email.
	Mail struct {
		// Provider is ses or log.
		Provider string `env:"MAIL_PROVIDER" env-default:"log" yaml:"provider"`
		From     string `env:"MAIL_FROM" env-default:"no-reply@labelchecker.local" yaml:"from"`
		Region   string `env:"MAIL_REGION" env-default:"us-east-1" yaml:"region"`
		// AccessKeyID and SecretAccessKey are static SES credentials. Empty uses the default AWS chain.
		AccessKeyID     string `env:"MAIL_ACCESS_KEY_ID" yaml:"accessKeyId"`
		SecretAccessKey string `env:"MAIL_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		// AppURL is the public frontend URL used in email links.
		AppURL string `env:"MAIL_APP_URL" env-default:"http://localhost:3000" yaml:"appUrl"`
	} `yaml:"mail"`

	// Invites configures team invitations.
	Invites struct {
		TTL time.Duration `env:"INVITES_TTL" env-default:"168h" yaml:"ttl"`
	} `yaml:"invites"`

	// Usage configures quota periods.
	Usage struct {
		// Period is how long a usage period lasts before scans_used resets.
		Period time.Duration `env:"USAGE_PERIOD" env-default:"720h" yaml:"period"`
	} `yaml:"usage"`

	// RateLimit throttles the public authentication endpoints per client IP.
	RateLimit struct {
		AuthRPS   float64 `env:"RATE_LIMIT_AUTH_RPS" env-default:"1" yaml:"authRps"`
		AuthBurst int     `env:"RATE_LIMIT_AUTH_BURST" env-default:"5" yaml:"authBurst"`
	} `yaml:"rateLimit"`

	// RiverUI serves the job queue dashboard under /riverui behind basic auth.
	// It stays disabled while Username is empty.
	RiverUI struct {
		Username string `env:"RIVERUI_USERNAME" yaml:"username"`
		Password string `env:"RIVERUI_PASSWORD" yaml:"password"`
	} `yaml:"riverUI"`

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
