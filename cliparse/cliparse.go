package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultCertRegistryURL is the public ORC certificate registry.
const DefaultCertRegistryURL = "https://data.orc.org/public/WPub.dll"

type Config struct {
	Port            int
	BackendURL      string
	DatabaseURL     string
	DatabaseType    string
	CertRegistryURL string
	BulkWorkers     int
}

// ParseFlags validates flags and fills defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("regatta-console", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BackendURL, "b", "", "Scoring backend base URL")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for import sessions")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CertRegistryURL, "cert-registry", "", "ORC certificate registry URL")
	fs.IntVar(&cfg.BulkWorkers, "bulk-workers", 0, "Max concurrent per-boat backend requests")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3320 // default
		}
	}

	if cfg.BackendURL == "" {
		cfg.BackendURL = os.Getenv("BACKEND_URL")
	}
	if cfg.BackendURL == "" {
		return Config{}, errors.New("scoring backend URL required (use -b or BACKEND_URL env)")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "file:regatta-console.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.CertRegistryURL == "" {
		cfg.CertRegistryURL = os.Getenv("CERT_REGISTRY_URL")
	}
	if cfg.CertRegistryURL == "" {
		cfg.CertRegistryURL = DefaultCertRegistryURL
	}

	if cfg.BulkWorkers == 0 {
		if s := os.Getenv("BULK_WORKERS"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid BULK_WORKERS env variable")
			}
			cfg.BulkWorkers = n
		} else {
			cfg.BulkWorkers = 4
		}
	}
	if cfg.BulkWorkers < 1 {
		return Config{}, errors.New("bulk workers must be at least 1")
	}

	return cfg, nil
}

// DriverName returns the database/sql driver name for the configured
// database type.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
