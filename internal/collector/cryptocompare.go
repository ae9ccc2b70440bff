package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"PriceCompare/internal/model"
)

// CryptoCompareFetcher implements Fetcher using the CryptoCompare histoday API.
type CryptoCompareFetcher struct {
	BaseURL string
	Quote   string // quote currency, USD by default
	Client  *http.Client
}

// NewCryptoCompareFetcher creates a fetcher with optional proxy support.
func NewCryptoCompareFetcher(proxyURL string) *CryptoCompareFetcher {
	return &CryptoCompareFetcher{
		BaseURL: "https://min-api.cryptocompare.com",
		Quote:   "USD",
		Client:  newHTTPClient(proxyURL),
	}
}

func (f *CryptoCompareFetcher) Name() string { return "cryptocompare" }

type histodayResponse struct {
	Response string `json:"Response"`
	Message  string `json:"Message"`
	Data     []struct {
		Time  int64   `json:"time"`
		Close float64 `json:"close"`
	} `json:"Data"`
}

func (f *CryptoCompareFetcher) FetchDailyCloses(ctx context.Context, symbol string, days int) ([]model.Point, error) {
	limit := days
	if limit <= 0 {
		limit = 2000 // API maximum
	}
	q := url.Values{}
	q.Set("fsym", strings.ToUpper(symbol))
	q.Set("tsym", f.Quote)
	q.Set("limit", strconv.Itoa(limit))
	u := fmt.Sprintf("%s/data/histoday?%s", f.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cryptocompare fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cryptocompare read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cryptocompare: status %d, body: %s", resp.StatusCode, snippet(body))
	}

	var hr histodayResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		return nil, fmt.Errorf("cryptocompare decode: %w", err)
	}
	if hr.Response == "Error" {
		return nil, fmt.Errorf("cryptocompare api error: %s", hr.Message)
	}
	if len(hr.Data) == 0 {
		return nil, fmt.Errorf("cryptocompare: no data returned")
	}

	points := make([]model.Point, 0, len(hr.Data))
	for _, d := range hr.Data {
		if d.Close == 0 {
			continue // listing gaps come back as zero bars
		}
		// time is unix seconds
		points = append(points, model.Point{Date: time.Unix(d.Time, 0).UTC(), Close: d.Close})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return lastN(points, days), nil
}
