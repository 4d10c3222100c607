package jobs

import (
	"context"
	"fmt"

	"github.com/hsuehlin/etfcalc/internal/etflist"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

// CatalogRefreshJob re-scrapes the TWSE ISIN list of listed ETFs
// ⭐ SSOT: ETF 清單更新排程只在這個 Job
type CatalogRefreshJob struct {
	catalog  *etflist.Catalog
	fetcher  etflist.Fetcher
	schedule string
	logger   *logger.Logger
}

// NewCatalogRefreshJob creates a new catalog refresh job
func NewCatalogRefreshJob(catalog *etflist.Catalog, fetcher etflist.Fetcher, schedule string, log *logger.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog:  catalog,
		fetcher:  fetcher,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *CatalogRefreshJob) Name() string {
	return "catalog_refresh"
}

// Schedule returns the cron schedule expression (with seconds)
func (j *CatalogRefreshJob) Schedule() string {
	return j.schedule
}

// Run executes the refresh. A failed scrape keeps the previous
// catalog snapshot, so the API never serves an empty ETF list.
func (j *CatalogRefreshJob) Run(ctx context.Context) error {
	j.logger.Info("Starting scheduled ETF catalog refresh")

	if err := j.catalog.Refresh(ctx, j.fetcher); err != nil {
		return fmt.Errorf("catalog refresh failed: %w", err)
	}

	j.logger.WithField("etf_count", j.catalog.Len()).Info("ETF catalog refreshed")
	return nil
}
