package etflist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsuehlin/etfcalc/internal/contracts"
	"github.com/hsuehlin/etfcalc/pkg/config"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
}

func TestNew_EmbeddedSeed(t *testing.T) {
	catalog, err := New("", testLogger())
	require.NoError(t, err)

	assert.Greater(t, catalog.Len(), 10)
	assert.True(t, catalog.Has("0050"))
	assert.True(t, catalog.Has("00878"))
	assert.False(t, catalog.Has("2330"), "stocks are not in the ETF catalog")
}

func TestParseSeed(t *testing.T) {
	seed := "Code,Name\n" +
		`="0050",元大台灣50` + "\n" +
		`="0056",元大高股息` + "\n"

	etfs, err := parseSeed(strings.NewReader(seed))
	require.NoError(t, err)
	require.Len(t, etfs, 2)
	assert.Equal(t, contracts.ETF{Code: "0050", Name: "元大台灣50"}, etfs[0])
	assert.Equal(t, contracts.ETF{Code: "0056", Name: "元大高股息"}, etfs[1])
}

func TestParseSeed_HeaderOnly(t *testing.T) {
	_, err := parseSeed(strings.NewReader("Code,Name\n"))
	assert.Error(t, err)
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`="0050"`, "0050"},
		{`0050`, "0050"},
		{` ="00692" `, "00692"},
		{`=""`, ""},
	}

	for _, tt := range tests {
		if got := normalizeCode(tt.input); got != tt.want {
			t.Errorf("normalizeCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

type stubFetcher struct {
	etfs []contracts.ETF
	err  error
}

func (s *stubFetcher) FetchETFList(ctx context.Context) ([]contracts.ETF, error) {
	return s.etfs, s.err
}

func TestRefresh(t *testing.T) {
	catalog, err := New("", testLogger())
	require.NoError(t, err)

	fresh := []contracts.ETF{{Code: "00999", Name: "測試ETF"}}
	require.NoError(t, catalog.Refresh(context.Background(), &stubFetcher{etfs: fresh}))

	assert.Equal(t, 1, catalog.Len())
	assert.True(t, catalog.Has("00999"))
	assert.False(t, catalog.Has("0050"))
}

func TestRefresh_KeepsOldSnapshotOnFailure(t *testing.T) {
	catalog, err := New("", testLogger())
	require.NoError(t, err)
	before := catalog.Len()

	err = catalog.Refresh(context.Background(), &stubFetcher{err: errors.New("boom")})
	assert.Error(t, err)
	assert.Equal(t, before, catalog.Len(), "failed refresh must not clobber the catalog")
	assert.True(t, catalog.Has("0050"))
}
