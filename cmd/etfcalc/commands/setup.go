package commands

import (
	"fmt"

	"github.com/hsuehlin/etfcalc/internal/etflist"
	"github.com/hsuehlin/etfcalc/internal/feed/twse"
	"github.com/hsuehlin/etfcalc/internal/feed/yahoo"
	"github.com/hsuehlin/etfcalc/internal/pipeline"
	"github.com/hsuehlin/etfcalc/internal/simconfig"
	"github.com/hsuehlin/etfcalc/pkg/config"
	"github.com/hsuehlin/etfcalc/pkg/httputil"
	"github.com/hsuehlin/etfcalc/pkg/logger"
	"github.com/hsuehlin/etfcalc/pkg/redis"
)

// app bundles the wired components every command starts from
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	redis    *redis.Client
	twse     *twse.Client
	yahoo    *yahoo.Client
	catalog  *etflist.Catalog
	runner   *pipeline.Runner
	defaults *simconfig.Config
}

// buildApp wires config, logging, feed clients and the pipeline runner.
// ⭐ SSOT: 元件組裝只在這裡
func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)
	if verbose {
		cfg.LogLevel = "debug"
		log = logger.New(cfg)
	}

	// Optional shared rate limiter. Disabled Redis still returns a
	// usable client whose limiter allows everything.
	redisClient, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	limiter := redis.NewRateLimiter(redisClient, "ratelimit")

	// Feed failures abort the whole run, so the HTTP layer must not
	// retry on its own. The catalog refresh job retries at the
	// scheduler level instead.
	twseHTTP := httputil.NewWithTimeout(cfg, log, cfg.TWSE.Timeout).
		DisableRetry().
		WithLocalLimit(cfg.TWSE.RateLimit).
		WithRateLimiter(limiter, redis.TWSERateLimit)
	yahooHTTP := httputil.NewWithTimeout(cfg, log, cfg.Yahoo.Timeout).
		DisableRetry().
		WithLocalLimit(cfg.Yahoo.RateLimit).
		WithRateLimiter(limiter, redis.YahooRateLimit)

	twseClient := twse.NewClient(cfg, twseHTTP, log)
	yahooClient := yahoo.NewClient(cfg, yahooHTTP, log)

	catalog, err := etflist.New(cfg.Catalog.SeedPath, log)
	if err != nil {
		return nil, fmt.Errorf("load ETF catalog: %w", err)
	}

	defaults, err := loadDefaults(cfg)
	if err != nil {
		return nil, fmt.Errorf("load simulation defaults: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		redis:    redisClient,
		twse:     twseClient,
		yahoo:    yahooClient,
		catalog:  catalog,
		runner:   pipeline.NewRunner(yahooClient, twseClient, log),
		defaults: defaults,
	}, nil
}

// loadDefaults reads the YAML defaults file, preferring the --defaults
// flag over SIM_DEFAULTS_PATH. No file means built-in defaults.
func loadDefaults(cfg *config.Config) (*simconfig.Config, error) {
	path := cfg.SimDefaultsPath
	if defaultsFile != "" {
		path = defaultsFile
	}
	if path == "" {
		return simconfig.Default(), nil
	}

	defaults, _, err := simconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return defaults, nil
}

func (a *app) close() {
	if a.redis != nil {
		a.redis.Close()
	}
}
