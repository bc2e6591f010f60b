package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr      = ":8080"
	defaultDatabaseURL     = "picdrop.db"
	defaultHostingEndpoint = "https://pic.in.th/api/1/upload"
	defaultHostingTimeout  = "30s"
)

// Config holds the process-wide runtime configuration, read once at startup.
// The hosting API key is injected into the hosting client from here; nothing
// reads it from the environment per request.
type Config struct {
	ListenAddr      string
	DatabaseURL     string
	HostingEndpoint string
	HostingAPIKey   string
	HostingTimeout  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ListenAddr = strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.HostingEndpoint = strings.TrimSpace(getEnv("PIC_IN_TH_ENDPOINT", defaultHostingEndpoint))

	// May legitimately be empty: uploads then fail with a configuration error
	// while history and deletion keep working.
	cfg.HostingAPIKey = strings.TrimSpace(os.Getenv("PIC_IN_TH_API_KEY"))

	var err error
	cfg.HostingTimeout, err = parseDurationEnv("PIC_IN_TH_TIMEOUT", defaultHostingTimeout)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.HostingAPIKey == "" {
		log.Printf("config: PIC_IN_TH_API_KEY is not set, uploads will be rejected")
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.HostingEndpoint == "" {
		return fmt.Errorf("PIC_IN_TH_ENDPOINT must not be empty")
	}
	if cfg.HostingTimeout <= 0 {
		return fmt.Errorf("PIC_IN_TH_TIMEOUT must be > 0")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
