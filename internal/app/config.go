package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/villagekeep/villagekeep-backend/internal/platform/envutil"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type Config struct {
	JWTSecret string

	// SearchIndexURL points at the published scraped-product index.
	SearchIndexURL string
	IndexCacheTTL  time.Duration

	RedisAddr     string
	RedisPassword string

	// Moderators is the email allow-list for review actions. Empty means
	// everyone authenticated may moderate.
	Moderators []string

	CORSOrigins []string
}

// fileConfig is the optional CONFIG_FILE overlay. Environment variables
// win over file values.
type fileConfig struct {
	SearchIndexURL string   `yaml:"search_index_url"`
	IndexCacheTTL  string   `yaml:"index_cache_ttl"`
	Moderators     []string `yaml:"moderators"`
	CORSOrigins    []string `yaml:"cors_origins"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		JWTSecret:      envutil.String("JWT_SECRET_KEY", "defaultsecret"),
		SearchIndexURL: envutil.String("SEARCH_INDEX_URL", ""),
		IndexCacheTTL:  envutil.Duration("INDEX_CACHE_TTL", time.Hour),
		RedisAddr:      envutil.String("REDIS_ADDR", ""),
		RedisPassword:  envutil.String("REDIS_PASSWORD", ""),
		Moderators:     splitList(os.Getenv("MODERATOR_EMAILS")),
		CORSOrigins:    splitList(envutil.String("CORS_ORIGINS", "*")),
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if cfg.SearchIndexURL == "" {
			cfg.SearchIndexURL = fc.SearchIndexURL
		}
		if fc.IndexCacheTTL != "" {
			if d, err := time.ParseDuration(fc.IndexCacheTTL); err == nil {
				cfg.IndexCacheTTL = d
			}
		}
		if len(cfg.Moderators) == 0 {
			cfg.Moderators = fc.Moderators
		}
		if len(fc.CORSOrigins) > 0 {
			cfg.CORSOrigins = fc.CORSOrigins
		}
		log.Info("config file loaded", "path", path)
	}

	if cfg.SearchIndexURL == "" {
		log.Warn("SEARCH_INDEX_URL not set, enrichment scans will degrade")
	}
	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
