// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrNoStore is returned when neither a store path nor a database URL is configured.
var ErrNoStore = errors.New("config: DB_PATH or DATABASE_URL must be set")

// Config holds all application configuration.
type Config struct {
	// Store – DatabaseURL (PostgreSQL) wins over DBPath (SQLite file).
	DBPath      string
	DatabaseURL string

	// JWT signing secret. Empty leaves the API open.
	JWTSecret string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// MySQL – used only by cmd/migrate to read an Ergast dump.
	MySQLDSN string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg, err := load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func load() (*Config, error) {
	v := newViper()

	// Defaults
	v.SetDefault("DB_PATH", "data/f1_database.db")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DBPath:      strings.TrimSpace(v.GetString("DB_PATH")),
		DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
		JWTSecret:   v.GetString("JWT_SECRET"),
		Debug:       v.GetBool("DEBUG"),
		Port:        v.GetString("PORT"),
		TLSDomains:  splitTrimmed(v.GetString("TLS_DOMAINS")),
		MySQLDSN:    v.GetString("MYSQL_DSN"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsPostgres reports whether the store is a PostgreSQL database rather than a SQLite file.
func (c *Config) IsPostgres() bool {
	return c.DatabaseURL != ""
}

// SQLiteDSN returns the go-sqlite3 URI for the store file.
func (c *Config) SQLiteDSN(readOnly bool) string {
	mode := "rwc"
	if readOnly {
		mode = "ro"
	}
	return fmt.Sprintf("file:%s?mode=%s&_busy_timeout=5000", c.DBPath, mode)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

// AuthEnabled reports whether API requests must carry a signed token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" && c.DBPath == "" {
		return ErrNoStore
	}
	if c.Port == "" {
		return errors.New("config: PORT must not be empty")
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
