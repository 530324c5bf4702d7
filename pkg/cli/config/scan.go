package config

import (
	"os"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/model/config"
	"github.com/adopt-lab/harbinger/pkg/service/cache"
	"github.com/adopt-lab/harbinger/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Scan holds CLI flags tuning scan behavior
type Scan struct {
	maxInFlight     int
	callTimeout     time.Duration
	maxPromptTokens int
	rulesFile       string

	cacheBackend  string
	redisAddr     string
	redisPassword string
	redisDB       int
}

// Flags returns CLI flags for scan configuration
func (s *Scan) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "max-in-flight",
			Usage:       "Maximum concurrent enrichment calls",
			Value:       8,
			Sources:     cli.EnvVars("HARBINGER_MAX_IN_FLIGHT"),
			Destination: &s.maxInFlight,
		},
		&cli.DurationFlag{
			Name:        "call-timeout",
			Usage:       "Timeout for a single generation call",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("HARBINGER_CALL_TIMEOUT"),
			Destination: &s.callTimeout,
		},
		&cli.IntFlag{
			Name:        "max-prompt-tokens",
			Usage:       "Prompt token budget per generation call",
			Value:       4000,
			Sources:     cli.EnvVars("HARBINGER_MAX_PROMPT_TOKENS"),
			Destination: &s.maxPromptTokens,
		},
		&cli.StringFlag{
			Name:        "rules-file",
			Usage:       "TOML file overriding detection thresholds",
			Sources:     cli.EnvVars("HARBINGER_RULES_FILE"),
			Destination: &s.rulesFile,
		},
		&cli.StringFlag{
			Name:        "cache-backend",
			Usage:       "Result cache backend (memory or redis)",
			Value:       "memory",
			Sources:     cli.EnvVars("HARBINGER_CACHE_BACKEND"),
			Destination: &s.cacheBackend,
		},
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address for the shared result cache",
			Value:       "localhost:6379",
			Sources:     cli.EnvVars("HARBINGER_REDIS_ADDR"),
			Destination: &s.redisAddr,
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password for the shared result cache",
			Sources:     cli.EnvVars("HARBINGER_REDIS_PASSWORD"),
			Destination: &s.redisPassword,
		},
		&cli.IntFlag{
			Name:        "redis-db",
			Usage:       "Redis database number for the shared result cache",
			Sources:     cli.EnvVars("HARBINGER_REDIS_DB"),
			Destination: &s.redisDB,
		},
	}
}

// MaxInFlight returns the configured concurrency ceiling
func (s *Scan) MaxInFlight() int {
	return s.maxInFlight
}

// CallTimeout returns the configured per-call timeout
func (s *Scan) CallTimeout() time.Duration {
	return s.callTimeout
}

// MaxPromptTokens returns the configured prompt token budget
func (s *Scan) MaxPromptTokens() int {
	return s.maxPromptTokens
}

// RuleConfig loads threshold overrides from the rules file, or the
// defaults when no file is configured.
func (s *Scan) RuleConfig() (*config.RuleConfig, error) {
	cfg := config.DefaultRuleConfig()
	if s.rulesFile == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(s.rulesFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rules file", goerr.V("path", s.rulesFile))
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rules file", goerr.V("path", s.rulesFile))
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid rules file", goerr.V("path", s.rulesFile))
	}

	return cfg, nil
}

// CacheBackend builds the configured result cache. The returned closer is
// non-nil for backends holding connections.
func (s *Scan) CacheBackend() (cache.Cache, func(), error) {
	switch s.cacheBackend {
	case "memory":
		return cache.NewMemoryCache(), func() {}, nil

	case "redis":
		c := cache.NewRedisCache(s.redisAddr, s.redisPassword, s.redisDB)
		logging.Default().Info("Using Redis result cache", "addr", s.redisAddr, "db", s.redisDB)
		return c, func() {
			if err := c.Close(); err != nil {
				logging.Default().Warn("failed to close redis cache", "error", err.Error())
			}
		}, nil

	default:
		return nil, nil, goerr.New("invalid cache backend", goerr.V("backend", s.cacheBackend))
	}
}
