package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (file names, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Dir              string `envconfig:"STORE_DIR" default:"./data"`
	PackagesFile     string `envconfig:"STORE_PACKAGES_FILE" default:"packages.txt"`
	ReservationsFile string `envconfig:"STORE_RESERVATIONS_FILE" default:"reservations.txt"`
	TransactionsFile string `envconfig:"STORE_TRANSACTIONS_FILE" default:"transactions.txt"`
	CustomersFile    string `envconfig:"STORE_CUSTOMERS_FILE" default:"customers.txt"`
	AdminsFile       string `envconfig:"STORE_ADMINS_FILE" default:"admins.txt"`
	AuditFile        string `envconfig:"STORE_AUDIT_FILE" default:"audit.log"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:"localhost"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

func (c *StoreConfig) Path(file string) string {
	return filepath.Join(c.Dir, file)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig(dir string) Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Dir:              dir,
			PackagesFile:     "packages.txt",
			ReservationsFile: "reservations.txt",
			TransactionsFile: "transactions.txt",
			CustomersFile:    "customers.txt",
			AdminsFile:       "admins.txt",
			AuditFile:        "audit.log",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Domain:   "localhost",
			Secure:   false,
			SameSite: "Lax",
		},
	}
}
