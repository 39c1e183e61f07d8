package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"MoneyMarketOptimizer/internal/model"
)

// DefaultFundDataURL serves the published fund-yield dataset.
const DefaultFundDataURL = "https://moneymarket.fun/data/fundYields.json"

// HTTPFetcher downloads the fund catalog as a JSON array of RawFund records.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher with optional proxy support.
func NewHTTPFetcher(dataURL, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if dataURL == "" {
		dataURL = DefaultFundDataURL
	}
	return &HTTPFetcher{
		URL: dataURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

func (f *HTTPFetcher) FetchFunds(ctx context.Context) ([]model.Fund, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch funds: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch funds: status %d, body: %s", resp.StatusCode, string(body))
	}

	var raw []RawFund
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode funds: %w", err)
	}
	return toFunds(raw), nil
}

func toFunds(raw []RawFund) []model.Fund {
	funds := make([]model.Fund, len(raw))
	for i, r := range raw {
		funds[i] = r.ToFund()
	}
	return funds
}
