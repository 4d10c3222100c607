package twse

import (
	"github.com/hsuehlin/etfcalc/pkg/config"
	"github.com/hsuehlin/etfcalc/pkg/httputil"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

// Client handles communication with the Taiwan Stock Exchange open endpoints
// ⭐ SSOT: 證交所資料呼叫只在這個 client
type Client struct {
	httpClient  *httputil.Client
	logger      *logger.Logger
	baseURL     string
	isinBaseURL string
}

// NewClient creates a new TWSE client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient:  httpClient,
		logger:      log,
		baseURL:     cfg.TWSE.BaseURL,
		isinBaseURL: cfg.TWSE.ISINBaseURL,
	}
}
