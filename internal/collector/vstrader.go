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
	"time"

	"PriceCompare/internal/model"
)

// VsTraderFetcher implements Fetcher using the vstrader REST API.
type VsTraderFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewVsTraderFetcher creates a new fetcher with optional proxy support.
func NewVsTraderFetcher(baseURL, apiKey, proxyURL string) *VsTraderFetcher {
	return &VsTraderFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL),
	}
}

func (f *VsTraderFetcher) Name() string { return "vstrader" }

// vsBar is the expected JSON shape from the vstrader API. Only the close is
// charted.
type vsBar struct {
	Timestamp int64   `json:"timestamp"`
	Close     float64 `json:"close"`
}

func (f *VsTraderFetcher) FetchDailyCloses(ctx context.Context, symbol string, days int) ([]model.Point, error) {
	if f.BaseURL == "" {
		return nil, fmt.Errorf("vstrader: base url not configured")
	}
	q := url.Values{}
	q.Set("symbol", symbol)
	if days > 0 {
		q.Set("limit", strconv.Itoa(days))
	}
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?%s", f.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, snippet(body))
	}
	var bars []vsBar
	if err := json.NewDecoder(resp.Body).Decode(&bars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	points := make([]model.Point, len(bars))
	for i, b := range bars {
		points[i] = model.Point{Date: time.Unix(b.Timestamp, 0).UTC(), Close: b.Close}
	}
	// Ensure chronological order
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return lastN(points, days), nil
}

// weeklyCloses keeps the last close of every ISO week. Each weekly point is
// dated on the first trading day of its week.
func weeklyCloses(daily []model.Point) []model.Point {
	if len(daily) == 0 {
		return nil
	}
	var weekly []model.Point
	var week model.Point
	var weekStarted bool

	for _, d := range daily {
		year, isoWeek := d.Date.ISOWeek()
		weekKey := year*100 + isoWeek

		if !weekStarted {
			week = d
			weekStarted = true
			continue
		}

		cy, cw := week.Date.ISOWeek()
		if weekKey != cy*100+cw {
			weekly = append(weekly, week)
			week = d
		} else {
			week.Close = d.Close
		}
	}
	return append(weekly, week)
}
