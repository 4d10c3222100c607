package twse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"github.com/hsuehlin/etfcalc/internal/contracts"
)

const catalogAdapter = "twse etf catalog"

// FetchETFList scrapes the ISIN listed-securities page for the ETF section.
// The page is one large table partitioned by bold section-header rows; data
// rows carry "code　name" (full-width space) in the first cell. The page is
// served in Big5.
func (c *Client) FetchETFList(ctx context.Context) ([]contracts.ETF, error) {
	url := fmt.Sprintf("%s/isin/C_public.jsp?strMode=4", c.isinBaseURL)

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, contracts.NetworkError(catalogAdapter, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, contracts.NetworkError(catalogAdapter,
			fmt.Errorf("unexpected status code %d", resp.StatusCode))
	}

	decoded := transform.NewReader(resp.Body, traditionalchinese.Big5.NewDecoder())
	etfs, err := parseETFDocument(decoded)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(etfs)).Debug("Fetched ETF catalog")
	return etfs, nil
}

// parseETFDocument extracts ETF rows from the (already decoded) ISIN page
func parseETFDocument(r io.Reader) ([]contracts.ETF, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, contracts.ValidationError(catalogAdapter, err)
	}

	etfs := make([]contracts.ETF, 0)
	inSection := false
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")

		// Section headers span the table width with a single bold cell.
		if cells.Length() == 1 {
			inSection = strings.TrimSpace(cells.First().Text()) == "ETF"
			return
		}
		if !inSection || cells.Length() == 0 {
			return
		}

		code, name, ok := splitCodeName(cells.First().Text())
		if !ok {
			return
		}
		etfs = append(etfs, contracts.ETF{Code: code, Name: name})
	})

	if len(etfs) == 0 {
		return nil, contracts.ValidationErrorf(catalogAdapter, "no ETF rows found in page")
	}
	return etfs, nil
}

// splitCodeName splits "0050　元大台灣50" on the full-width space
func splitCodeName(s string) (code, name string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "　", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	code = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if code == "" || name == "" {
		return "", "", false
	}
	return code, name, true
}
