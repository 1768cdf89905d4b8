package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config inspecao-server (HTTP API) configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	Database struct {
		Host     string
		Port     int
		User     string
		Password string
		Database string
		SSLMode  string
		MaxConns int
		MaxIdle  int
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Catalog CatalogConfig
	Lookup  LookupConfig
	ViaCEP  ViaCEPConfig
	Sync    SyncConfig
}

// CatalogConfig external CNAE catalog service.
type CatalogConfig struct {
	BaseURL  string        // catalog endpoint (read-only, returns the full CNAE list)
	Timeout  time.Duration // request timeout
	CacheTTL time.Duration // redis cache TTL for the fetched catalog
}

// LookupConfig external required-by-division lookup service.
type LookupConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ViaCEPConfig postal-code address lookup.
type ViaCEPConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SyncConfig requirement synchronization policy.
type SyncConfig struct {
	// PreserveAssessments carries atende/observacoes over a resync for
	// requirement ids present both before and after. Default false: every
	// resync resets assessments to pending.
	PreserveAssessments bool
	// CriteriaMatchHeight includes altura_tipo in the criteria-table
	// predicate alongside divisao/area. Default false: area and division
	// only.
	CriteriaMatchHeight bool
}

// DSN builds the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Database, c.Database.SSLMode)
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "inspecao")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Catalog.BaseURL = getEnv("CNAE_CATALOG_URL", "")
	cfg.Catalog.Timeout = parseDuration(getEnv("CNAE_CATALOG_TIMEOUT", "15s"), 15*time.Second)
	cfg.Catalog.CacheTTL = parseDuration(getEnv("CNAE_CATALOG_CACHE_TTL", "6h"), 6*time.Hour)

	cfg.Lookup.BaseURL = getEnv("EXIGENCIA_LOOKUP_URL", "")
	cfg.Lookup.Timeout = parseDuration(getEnv("EXIGENCIA_LOOKUP_TIMEOUT", "10s"), 10*time.Second)

	cfg.ViaCEP.BaseURL = getEnv("VIACEP_URL", "https://viacep.com.br")
	cfg.ViaCEP.Timeout = parseDuration(getEnv("VIACEP_TIMEOUT", "5s"), 5*time.Second)

	cfg.Sync.PreserveAssessments = getEnv("SYNC_PRESERVE_ASSESSMENTS", "false") == "true"
	cfg.Sync.CriteriaMatchHeight = getEnv("CRITERIA_MATCH_HEIGHT", "false") == "true"

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func parseDuration(s string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return v
}
