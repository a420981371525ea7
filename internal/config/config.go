package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Host            string
	Port            string
	ShutdownTimeout time.Duration

	// Database
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	RunMigrations     bool
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

var defaults = map[string]interface{}{
	"env":                  "development",
	"host":                 "0.0.0.0",
	"port":                 "3001",
	"shutdown_timeout":     "10s",
	"database_url":         "",
	"db_max_open_conns":    100,
	"db_max_idle_conns":    10,
	"db_conn_max_lifetime": "1h",
	"run_migrations":       true,
}

// Load loads configuration from the environment, after reading a .env file
// when one exists. Keys are looked up by their upper-cased name (PORT, DATABASE_URL, ...).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:               v.GetString("env"),
		Host:              v.GetString("host"),
		Port:              v.GetString("port"),
		ShutdownTimeout:   v.GetDuration("shutdown_timeout"),
		DatabaseURL:       v.GetString("database_url"),
		DBMaxOpenConns:    v.GetInt("db_max_open_conns"),
		DBMaxIdleConns:    v.GetInt("db_max_idle_conns"),
		DBConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),
		RunMigrations:     v.GetBool("run_migrations"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and sane.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s", c.ShutdownTimeout)
	}
	if c.DBMaxOpenConns < 1 {
		return fmt.Errorf("invalid DB_MAX_OPEN_CONNS %d", c.DBMaxOpenConns)
	}
	return nil
}
