package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string `mapstructure:"port"`
	Debug       bool   `mapstructure:"debug"`
	LogJSON     bool   `mapstructure:"log_json"`
	CORSOrigins string `mapstructure:"cors_origins"`

	// Database
	DBDriver    string `mapstructure:"db_driver"`
	DatabaseURL string `mapstructure:"database_url"`
	SeedDemo    bool   `mapstructure:"seed_demo_users"`

	// Authentication
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpiryHours     int    `mapstructure:"jwt_expiry_hours"`
	GoogleClientID     string `mapstructure:"google_client_id"`
	LoginRatePerMinute int    `mapstructure:"login_rate_per_minute"`
	LoginBurst         int    `mapstructure:"login_burst"`

	// Resume storage
	ResumeBackend  string `mapstructure:"resume_backend"`
	UploadDir      string `mapstructure:"upload_dir"`
	ResumeMaxBytes int64  `mapstructure:"resume_max_bytes"`
	CVBucketName   string `mapstructure:"cv_bucket_name"`
	S3Bucket       string `mapstructure:"s3_bucket"`
	S3Endpoint     string `mapstructure:"s3_endpoint"`
	S3Region       string `mapstructure:"s3_region"`
	S3AccessKey    string `mapstructure:"s3_access_key"`
	S3SecretKey    string `mapstructure:"s3_secret_key"`

	// Payments
	PaymentProvider   string `mapstructure:"payment_provider"`
	PriceMinor        int64  `mapstructure:"price_minor"`
	PriceCurrency     string `mapstructure:"price_currency"`
	AccessHours       int    `mapstructure:"access_hours"`
	RazorpayKeyID     string `mapstructure:"razorpay_key_id"`
	RazorpayKeySecret string `mapstructure:"razorpay_key_secret"`
	RazorpayBaseURL   string `mapstructure:"razorpay_base_url"`
	PayPalClientID    string `mapstructure:"paypal_client_id"`
	PayPalSecret      string `mapstructure:"paypal_secret"`
	PayPalEnv         string `mapstructure:"paypal_env"`
	PayPalBaseURL     string `mapstructure:"paypal_base_url"`

	// Events
	AMQPURL      string `mapstructure:"amqp_url"`
	AMQPExchange string `mapstructure:"amqp_exchange"`

	// Mail
	SendGridAPIKey  string `mapstructure:"sendgrid_api_key"`
	SendGridBaseURL string `mapstructure:"sendgrid_base_url"`
	MailFrom        string `mapstructure:"mail_from"`
	MailFromName    string `mapstructure:"mail_from_name"`

	// Timeouts
	HTTPTimeoutSeconds int `mapstructure:"http_timeout_seconds"`
}

var defaults = map[string]any{
	"port":         "8080",
	"debug":        false,
	"log_json":     false,
	"cors_origins": "",

	"db_driver":       "sqlite",
	"database_url":    "data/portal.db",
	"seed_demo_users": false,

	"jwt_secret":            "your-secret-key-change-in-production",
	"jwt_expiry_hours":      8,
	"google_client_id":      "",
	"login_rate_per_minute": 10,
	"login_burst":           5,

	"resume_backend":   "local",
	"upload_dir":       "uploads",
	"resume_max_bytes": 4 << 20,
	"cv_bucket_name":   "",
	"s3_bucket":        "",
	"s3_endpoint":      "",
	"s3_region":        "auto",
	"s3_access_key":    "",
	"s3_secret_key":    "",

	"payment_provider":    "razorpay",
	"price_minor":         9900,
	"price_currency":      "INR",
	"access_hours":        1,
	"razorpay_key_id":     "",
	"razorpay_key_secret": "",
	"razorpay_base_url":   "https://api.razorpay.com",
	"paypal_client_id":    "",
	"paypal_secret":       "",
	"paypal_env":          "sandbox",
	"paypal_base_url":     "",

	"amqp_url":      "",
	"amqp_exchange": "jobboard_events",

	"sendgrid_api_key":  "",
	"sendgrid_base_url": "https://api.sendgrid.com",
	"mail_from":         "",
	"mail_from_name":    "DreamJobs",

	"http_timeout_seconds": 30,
}

// Load reads configuration from defaults, the optional config file and
// the environment, in increasing order of precedence.
func Load(file string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.PayPalBaseURL == "" {
		cfg.PayPalBaseURL = "https://api-m.sandbox.paypal.com"
		if cfg.PayPalEnv == "live" {
			cfg.PayPalBaseURL = "https://api-m.paypal.com"
		}
	}

	return &cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return &ConfigError{Field: "DB_DRIVER", Message: fmt.Sprintf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver)}
	}
	if c.DatabaseURL == "" {
		return &ConfigError{Field: "DATABASE_URL", Message: "DATABASE_URL is required"}
	}

	if c.JWTSecret == "" {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET is required"}
	}

	switch c.ResumeBackend {
	case "local":
	case "gcs":
		if c.CVBucketName == "" {
			return &ConfigError{Field: "CV_BUCKET_NAME", Message: "CV_BUCKET_NAME is required for the gcs resume backend"}
		}
	case "s3":
		if c.S3Bucket == "" {
			return &ConfigError{Field: "S3_BUCKET", Message: "S3_BUCKET is required for the s3 resume backend"}
		}
	default:
		return &ConfigError{Field: "RESUME_BACKEND", Message: fmt.Sprintf("RESUME_BACKEND must be local, gcs or s3, got %q", c.ResumeBackend)}
	}

	switch c.PaymentProvider {
	case "razorpay", "paypal":
	default:
		return &ConfigError{Field: "PAYMENT_PROVIDER", Message: fmt.Sprintf("PAYMENT_PROVIDER must be razorpay or paypal, got %q", c.PaymentProvider)}
	}
	if c.PriceMinor <= 0 {
		return &ConfigError{Field: "PRICE_MINOR", Message: "PRICE_MINOR must be positive"}
	}
	if c.AccessHours <= 0 {
		return &ConfigError{Field: "ACCESS_HOURS", Message: "ACCESS_HOURS must be positive"}
	}

	if c.SendGridAPIKey != "" && c.MailFrom == "" {
		return &ConfigError{Field: "MAIL_FROM", Message: "MAIL_FROM is required when SENDGRID_API_KEY is set"}
	}

	return nil
}

// PaymentsConfigured reports whether credentials for the selected
// payment provider are present.
func (c *Config) PaymentsConfigured() bool {
	if c.PaymentProvider == "paypal" {
		return c.PayPalClientID != "" && c.PayPalSecret != ""
	}
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// MailConfigured reports whether outgoing email can be sent.
func (c *Config) MailConfigured() bool {
	return c.SendGridAPIKey != ""
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
