package files

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"gamrycli/internal/signal"
)

// Loader batch-parses a folder of export files into signals.
type Loader struct {
	logger  *slog.Logger
	workers int
}

// NewLoader creates a batch loader. workers bounds concurrent file parses;
// values below 1 mean sequential loading.
func NewLoader(logger *slog.Logger, workers int) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Loader{logger: logger, workers: workers}
}

// LoadSignals parses every export file in dir through the signal factory and
// returns the constructed signals in discovery (filename) order. Files the
// type filter skips are dropped silently; the first structural error aborts
// the whole batch and is returned.
func (l *Loader) LoadSignals(ctx context.Context, dir string, opts signal.Options) ([]signal.Signal, error) {
	found, err := NewDiscovery("").FindDTAFiles(dir)
	if err != nil {
		return nil, err
	}

	l.logger.Info("loading signal files",
		slog.String("directory", dir),
		slog.Int("file_count", len(found)),
		slog.String("type_filter", string(opts.TypeFilter)))

	results := make([]signal.Signal, len(found))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, file := range found {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := signal.FromFile(file.Path, opts)
			if errors.Is(err, signal.ErrSkipped) {
				l.logger.Debug("skipping file outside type filter", slog.String("file", file.Name))
				return nil
			}
			if err != nil {
				return fmt.Errorf("loading %s: %w", file.Name, err)
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	signals := make([]signal.Signal, 0, len(results))
	for _, s := range results {
		if s != nil {
			signals = append(signals, s)
		}
	}

	l.logger.Info("signal batch loaded",
		slog.String("directory", dir),
		slog.Int("signal_count", len(signals)),
		slog.Int("skipped", len(found)-len(signals)))

	return signals, nil
}
