package metrics

import (
	"context"
	"log/slog"
	"time"
)

// CountFunc reports the current number of rows behind a gauge.
type CountFunc func(ctx context.Context) (int64, error)

// Poller refreshes the database-state gauges on a fixed interval.
type Poller struct {
	NewsCount  CountFunc
	NotesCount CountFunc
	Interval   time.Duration
	Logger     *slog.Logger
}

// Run refreshes the gauges until the context is canceled. The first
// refresh happens immediately so the gauges are populated at startup.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}

	p.refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	if p.NewsCount != nil {
		if n, err := p.NewsCount(ctx); err != nil {
			p.Logger.Warn("refresh news gauge", slog.Any("error", err))
		} else {
			UpdateNewsTotal(n)
		}
	}
	if p.NotesCount != nil {
		if n, err := p.NotesCount(ctx); err != nil {
			p.Logger.Warn("refresh notes gauge", slog.Any("error", err))
		} else {
			UpdateNotesTotal(n)
		}
	}
}
