package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, catalog)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Payment   PaymentConfig
	Flow      FlowConfig
	RateLimit RateLimitConfig
	Bootstrap BootstrapConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// PublicBaseURL is the externally reachable origin of the client UI; purchase links,
	// QR codes and gateway return URLs are built from it.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Rome"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Rome"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type PaymentConfig struct {
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	Currency            string `envconfig:"PAYMENT_CURRENCY" default:"eur"`
}

type FlowConfig struct {
	TTL           time.Duration `envconfig:"FLOW_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"FLOW_SWEEP_INTERVAL" default:"5m"`
	// BusinessTimeZone decides what "today" means for appointment dates.
	BusinessTimeZone string `envconfig:"BUSINESS_TIMEZONE" default:"Europe/Rome"`
	// CatalogFile overrides the embedded service catalog when set.
	CatalogFile string `envconfig:"CATALOG_FILE" default:""`
}

type RateLimitConfig struct {
	RequestsPerSecond float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	IdleTimeout       time.Duration `envconfig:"RATE_LIMIT_IDLE_TIMEOUT" default:"10m"`
}

type BootstrapConfig struct {
	TechnicianEmail    string `envconfig:"BOOTSTRAP_TECHNICIAN_EMAIL" default:""`
	TechnicianPassword string `envconfig:"BOOTSTRAP_TECHNICIAN_PASSWORD" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c FlowConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.BusinessTimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load business timezone %q: %w", c.BusinessTimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database section, for tools that never start the server.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Rome",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Rome",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Payment: PaymentConfig{
			StripeSecretKey:     "sk_test_dummy",
			StripeWebhookSecret: "whsec_test_dummy",
			Currency:            "eur",
		},
		Flow: FlowConfig{
			TTL:              time.Hour,
			SweepInterval:    time.Minute,
			BusinessTimeZone: "Europe/Rome",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
			IdleTimeout:       time.Minute,
		},
	}
}
