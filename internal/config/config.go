// Package config reads the handful of environment variables this
// service honors, the same way the teacher's server/database packages
// each read their own os.Getenv value directly.
package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultPort  = 8080
	defaultDBURL = "./isolux.db"
)

// Config holds the process-wide settings derived from the environment.
type Config struct {
	Port  int
	DBURL string
}

// Load reads PORT and ISOLUX_DB_URL, falling back to sane defaults.
func Load() Config {
	cfg := Config{Port: defaultPort, DBURL: defaultDBURL}

	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}

	if raw := os.Getenv("ISOLUX_DB_URL"); raw != "" {
		cfg.DBURL = raw
	}

	return cfg
}
