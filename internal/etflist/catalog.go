package etflist

import (
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hsuehlin/etfcalc/internal/contracts"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

// Seed catalog shipped with the binary; the exchange publishes codes in the
// ="0050" quoting style and the parser strips it.
//
//go:embed etf_list.csv
var embeddedSeed []byte

// Fetcher provides a live ETF list, normally the TWSE ISIN scraper
type Fetcher interface {
	FetchETFList(ctx context.Context) ([]contracts.ETF, error)
}

// Catalog is the selectable ETF universe. It is the only state shared
// across simulation runs: static configuration, refreshed atomically as a
// whole snapshot, never touched by per-run data.
// ⭐ SSOT: 可選 ETF 清單只在這裡維護
type Catalog struct {
	mu     sync.RWMutex
	etfs   []contracts.ETF
	logger *logger.Logger
}

// New builds a catalog from the embedded seed, or from seedPath when set
func New(seedPath string, log *logger.Logger) (*Catalog, error) {
	var reader io.Reader
	if seedPath != "" {
		f, err := os.Open(seedPath)
		if err != nil {
			return nil, fmt.Errorf("open catalog seed: %w", err)
		}
		defer f.Close()
		reader = f
	} else {
		reader = strings.NewReader(string(embeddedSeed))
	}

	etfs, err := parseSeed(reader)
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(etfs)).Info("ETF catalog loaded")
	return &Catalog{etfs: etfs, logger: log}, nil
}

// parseSeed reads the catalog CSV (Code,Name header row expected)
func parseSeed(r io.Reader) ([]contracts.ETF, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true // the ="0050" quoting is a bare quote to encoding/csv

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("catalog seed has no data rows")
	}

	etfs := make([]contracts.ETF, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) < 2 {
			continue
		}
		code := normalizeCode(row[0])
		if code == "" {
			continue
		}
		etfs = append(etfs, contracts.ETF{Code: code, Name: strings.TrimSpace(row[1])})
	}

	if len(etfs) == 0 {
		return nil, fmt.Errorf("catalog seed has no usable rows")
	}
	return etfs, nil
}

// normalizeCode strips the exchange's ="0050" CSV quoting
func normalizeCode(s string) string {
	s = strings.ReplaceAll(s, "=", "")
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}

// List returns a copy of the current catalog
func (c *Catalog) List() []contracts.ETF {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]contracts.ETF, len(c.etfs))
	copy(out, c.etfs)
	return out
}

// Has reports whether code is in the catalog
func (c *Catalog) Has(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, etf := range c.etfs {
		if etf.Code == code {
			return true
		}
	}
	return false
}

// Len returns the catalog size
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.etfs)
}

// Refresh replaces the catalog with a freshly scraped list. The old
// snapshot stays in place on any failure.
func (c *Catalog) Refresh(ctx context.Context, fetcher Fetcher) error {
	etfs, err := fetcher.FetchETFList(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}

	c.mu.Lock()
	c.etfs = etfs
	c.mu.Unlock()

	c.logger.WithField("count", len(etfs)).Info("ETF catalog refreshed")
	return nil
}
