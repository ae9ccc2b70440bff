package collector

import (
	"context"
	"errors"
	"fmt"
	"log"

	"PriceCompare/internal/calculator"
	"PriceCompare/internal/config"
	"PriceCompare/internal/model"
)

// Collector assembles the configured series from their sources.
type Collector struct {
	Specs   []config.SeriesSpec
	Sources map[string]Fetcher // keyed by config source name
}

// NewCollector creates a Collector wired to every known source.
func NewCollector(cfg *config.Config) *Collector {
	return &Collector{
		Specs: cfg.Series,
		Sources: map[string]Fetcher{
			config.SourceFixture:       NewFixtureFetcher(),
			config.SourceYahoo:         NewYahooFetcher(cfg.Proxy),
			config.SourceCryptoCompare: NewCryptoCompareFetcher(cfg.Proxy),
			config.SourceVsTrader:      NewVsTraderFetcher(cfg.VsTrader.BaseURL, cfg.VsTrader.APIKey, cfg.Proxy),
		},
	}
}

// Collect fetches every configured series in order. A series whose source
// fails, or whose derive base is missing, is logged and skipped.
func (c *Collector) Collect(ctx context.Context) ([]model.Series, error) {
	out := make([]model.Series, 0, len(c.Specs))
	byName := make(map[string]model.Series, len(c.Specs))

	for _, spec := range c.Specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := c.collectOne(ctx, spec, byName)
		if err != nil {
			log.Printf("[WARN] series %q skipped: %v", spec.Name, err)
			continue
		}
		byName[s.Name] = s
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, errors.New("no series could be collected")
	}
	return out, nil
}

func (c *Collector) collectOne(ctx context.Context, spec config.SeriesSpec, byName map[string]model.Series) (model.Series, error) {
	if spec.Derive != nil {
		base, ok := byName[spec.Derive.From]
		if !ok {
			return model.Series{}, fmt.Errorf("derive base %q unavailable", spec.Derive.From)
		}
		if spec.Derive.MA > 0 {
			ma, err := calculator.MovingAverage(base.Points, spec.Derive.MA)
			if err != nil {
				return model.Series{}, fmt.Errorf("moving average of %q: %w", base.Name, err)
			}
			base = model.Series{Name: base.Name, Points: ma}
		}
		return base.Shifted(spec.Name, spec.Color, spec.Derive.Offset), nil
	}

	f, ok := c.Sources[spec.Source]
	if !ok {
		return model.Series{}, fmt.Errorf("no fetcher for source %q", spec.Source)
	}
	points, err := f.FetchDailyCloses(ctx, spec.Symbol, spec.Days)
	if err != nil {
		return model.Series{}, fmt.Errorf("fetch %s: %w", f.Name(), err)
	}
	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("%s returned no points", f.Name())
	}
	if spec.Interval == config.IntervalWeekly {
		points = weeklyCloses(points)
	}
	log.Printf("[INFO] series %q: %d points from %s", spec.Name, len(points), f.Name())
	return model.Series{Name: spec.Name, Color: spec.Color, Points: points}, nil
}
