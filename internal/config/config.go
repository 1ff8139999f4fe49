package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

const defaultJWTSecret = "secret"

// Config holds all environment-derived settings. Everything except the
// Mongo URI has a development default.
type Config struct {
	Port         string
	JWTSecret    string
	MongoURI     string
	DatabaseName string // taken from the Mongo URI path
	AuthEmail    string
	AuthPassword string
}

// Load reads configuration from the environment. It returns an error
// only when the store connection string is missing or unparseable;
// every other setting falls back to a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "5000"),
		JWTSecret:    getEnv("JWT_SECRET", defaultJWTSecret),
		MongoURI:     os.Getenv("MONGO_URI"),
		AuthEmail:    getEnv("AUTH_EMAIL", "admin@finboard.local"),
		AuthPassword: getEnv("AUTH_PASSWORD", "changeme"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	dbName, err := databaseFromURI(cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("parsing MONGO_URI: %w", err)
	}
	cfg.DatabaseName = dbName

	return cfg, nil
}

// UsingDefaultSecret reports whether the signing secret was left at its
// insecure default.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// databaseFromURI extracts the database name from the connection
// string path, e.g. mongodb://host:27017/finance -> "finance".
func databaseFromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return "", fmt.Errorf("connection string %q carries no database name", uri)
	}
	return name, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
