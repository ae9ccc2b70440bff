package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"PriceCompare/internal/model"
)

// Source names accepted in a series spec.
const (
	SourceFixture       = "fixture"
	SourceYahoo         = "yahoo"
	SourceCryptoCompare = "cryptocompare"
	SourceVsTrader      = "vstrader"
)

// Sampling intervals for fetched series.
const (
	IntervalDaily  = "daily"
	IntervalWeekly = "weekly"
)

// Derive describes a series built from an earlier one: its closes shifted
// by Offset, optionally smoothed by an MA-day moving average first.
type Derive struct {
	From   string  `yaml:"from"`
	Offset float64 `yaml:"offset"`
	MA     int     `yaml:"ma"`
}

// SeriesSpec configures one line on the chart.
type SeriesSpec struct {
	Name   string  `yaml:"name"`
	Color  string  `yaml:"color"`
	Source string  `yaml:"source"`
	Symbol string  `yaml:"symbol"`
	Days     int     `yaml:"days"`
	Interval string  `yaml:"interval"`
	Derive   *Derive `yaml:"derive"`
}

// Config holds all application configuration.
type Config struct {
	Chart struct {
		Title  string       `yaml:"title"`
		Width  int          `yaml:"width"`
		Height int          `yaml:"height"`
		Margin model.Margin `yaml:"margin"`
	} `yaml:"chart"`
	Series []SeriesSpec `yaml:"series"`
	Output struct {
		HTMLPath string `yaml:"html_path"`
		PNGPath  string `yaml:"png_path"`
	} `yaml:"output"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	VsTrader struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"vstrader"`
	Proxy string `yaml:"proxy"`
}

// DefaultSeries mirrors the stock comparison the chart shipped with: one
// fixture line and two copies shifted up by 100 each.
func DefaultSeries() []SeriesSpec {
	return []SeriesSpec{
		{Name: "Apple", Color: "green", Source: SourceFixture},
		{Name: "Bitcoin", Color: "magenta", Derive: &Derive{From: "Apple", Offset: 100}},
		{Name: "Tesla", Color: "blue", Derive: &Derive{From: "Bitcoin", Offset: 100}},
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("OUTPUT_HTML"); v != "" {
		cfg.Output.HTMLPath = v
	}
	if v := os.Getenv("OUTPUT_PNG"); v != "" {
		cfg.Output.PNGPath = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("VSTRADER_BASE_URL"); v != "" {
		cfg.VsTrader.BaseURL = v
	}
	if v := os.Getenv("VSTRADER_API_KEY"); v != "" {
		cfg.VsTrader.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CHART_WIDTH"); v != "" {
		var w int
		if _, err := fmt.Sscanf(v, "%d", &w); err == nil {
			cfg.Chart.Width = w
		}
	}
	if v := os.Getenv("CHART_HEIGHT"); v != "" {
		var h int
		if _, err := fmt.Sscanf(v, "%d", &h); err == nil {
			cfg.Chart.Height = h
		}
	}

	// Defaults
	if cfg.Chart.Title == "" {
		cfg.Chart.Title = "Performance"
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 800
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 480
	}
	if cfg.Chart.Margin == (model.Margin{}) {
		cfg.Chart.Margin = model.Margin{Top: 30, Left: 60, Right: 30, Bottom: 80}
	}
	if len(cfg.Series) == 0 {
		cfg.Series = DefaultSeries()
	}
	for i := range cfg.Series {
		s := &cfg.Series[i]
		if s.Derive == nil && s.Source == "" {
			s.Source = SourceFixture
		}
		if s.Days == 0 && s.Derive == nil && s.Source != SourceFixture {
			s.Days = 365
		}
		if s.Interval == "" && s.Derive == nil {
			s.Interval = IntervalDaily
		}
	}
	if cfg.Output.HTMLPath == "" {
		cfg.Output.HTMLPath = "out/report.html"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */15 * * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	m := c.Chart.Margin
	if float64(c.Chart.Width) <= m.Left+m.Right {
		return fmt.Errorf("chart.width must exceed left+right margin")
	}
	if float64(c.Chart.Height) <= m.Top+m.Bottom {
		return fmt.Errorf("chart.height must exceed top+bottom margin")
	}
	if len(c.Series) == 0 {
		return fmt.Errorf("at least one series is required")
	}
	seen := make(map[string]struct{}, len(c.Series))
	for i, s := range c.Series {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("series[%d].name is required", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("series %q is defined twice", name)
		}
		if s.Derive != nil {
			if _, ok := seen[s.Derive.From]; !ok {
				return fmt.Errorf("series %q derives from %q, which must be defined earlier", name, s.Derive.From)
			}
			if s.Derive.MA < 0 {
				return fmt.Errorf("series %q: derive.ma must not be negative", name)
			}
		} else {
			switch s.Source {
			case SourceFixture:
			case SourceYahoo, SourceCryptoCompare, SourceVsTrader:
				if s.Symbol == "" {
					return fmt.Errorf("series %q: source %s needs a symbol", name, s.Source)
				}
				if s.Source == SourceVsTrader && c.VsTrader.BaseURL == "" {
					return fmt.Errorf("series %q: vstrader.base_url is required", name)
				}
			default:
				return fmt.Errorf("series %q: unknown source %q", name, s.Source)
			}
			if s.Days < 0 {
				return fmt.Errorf("series %q: days must not be negative", name)
			}
			if s.Interval != IntervalDaily && s.Interval != IntervalWeekly {
				return fmt.Errorf("series %q: unknown interval %q", name, s.Interval)
			}
		}
		seen[name] = struct{}{}
	}
	if c.Output.HTMLPath == "" {
		return fmt.Errorf("output.html_path is required")
	}
	return nil
}
