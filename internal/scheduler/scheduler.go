package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"PriceCompare/internal/chart"
	"PriceCompare/internal/collector"
	"PriceCompare/internal/config"
	"PriceCompare/internal/recorder"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the collect and render pipeline, once or on a cron
// schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Title     string
	Layout    chart.Layout
	WithPNG   bool
	Ctx       context.Context

	mu sync.Mutex
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, cfg *config.Config, col *collector.Collector, rec recorder.Recorder, withPNG bool) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Recorder:  rec,
		Title:     cfg.Chart.Title,
		Layout: chart.Layout{
			Width:  float64(cfg.Chart.Width),
			Height: float64(cfg.Chart.Height),
			Margin: cfg.Chart.Margin,
		},
		WithPNG: withPNG,
		Ctx:     ctx,
	}
}

// Register adds the refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one refresh immediately.
func (s *Scheduler) RunNow() error {
	return s.Refresh()
}

// BuildGraph collects the configured series and lays them out.
func (s *Scheduler) BuildGraph() (*chart.Graph, error) {
	series, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	g, err := chart.NewGraph(s.Title, s.Layout, series)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return g, nil
}

// Refresh collects, renders and saves. Refreshes never overlap; on error the
// previously saved artifacts are left untouched.
func (s *Scheduler) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	g, err := s.BuildGraph()
	if err != nil {
		return err
	}
	art, err := s.render(g)
	if err != nil {
		return err
	}
	if err := s.Recorder.Save(art); err != nil {
		return fmt.Errorf("save artifacts: %w", err)
	}
	log.Printf("[INFO] run %s: refresh done, %d series in %s", art.RunID, len(g.Series()), time.Since(start).Round(time.Millisecond))
	return nil
}

func (s *Scheduler) render(g *chart.Graph) (*recorder.Artifacts, error) {
	art := &recorder.Artifacts{RunID: uuid.NewString(), GeneratedAt: time.Now()}

	var page bytes.Buffer
	if err := chart.RenderHTML(&page, g); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	art.HTML = page.Bytes()

	if s.WithPNG {
		var img bytes.Buffer
		if err := chart.RenderPNG(&img, g); err != nil {
			log.Printf("[WARN] png snapshot skipped: %v", err)
		} else {
			art.PNG = img.Bytes()
		}
	}
	return art, nil
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh task")
	if err := s.Refresh(); err != nil {
		log.Printf("[ERROR] refresh: %v", err)
	}
}
