package metrics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPollerRefreshesGauges(t *testing.T) {
	p := &Poller{
		NewsCount:  func(ctx context.Context) (int64, error) { return 7, nil },
		NotesCount: func(ctx context.Context) (int64, error) { return 3, nil },
		Interval:   time.Hour,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Run(ctx) // cancelled context: one initial refresh, then return

	if got := testutil.ToFloat64(NewsTotal); got != 7 {
		t.Errorf("news_total = %v, want 7", got)
	}
	if got := testutil.ToFloat64(NotesTotal); got != 3 {
		t.Errorf("notes_total = %v, want 3", got)
	}
}

func TestPollerKeepsGaugeOnError(t *testing.T) {
	UpdateNewsTotal(42)

	p := &Poller{
		NewsCount: func(ctx context.Context) (int64, error) { return 0, errors.New("db down") },
		Interval:  time.Hour,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.refresh(context.Background())

	if got := testutil.ToFloat64(NewsTotal); got != 42 {
		t.Errorf("news_total = %v, want 42 after failed refresh", got)
	}
}
