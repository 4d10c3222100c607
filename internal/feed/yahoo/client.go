package yahoo

import (
	"github.com/hsuehlin/etfcalc/pkg/config"
	"github.com/hsuehlin/etfcalc/pkg/httputil"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

// Client handles communication with the Yahoo Finance chart API
// ⭐ SSOT: 價格資料呼叫只在這個 client
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new Yahoo Finance client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    cfg.Yahoo.BaseURL,
	}
}
