package crawl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/specpipe/core"
)

// InterRequestDelay is the fixed pause between consecutive fetches.
const InterRequestDelay = 500 * time.Millisecond

// FetchAll downloads the given source files sequentially into dir, pausing
// InterRequestDelay between requests. Individual failures don't stop the
// loop; they accumulate into the returned error.
func FetchAll(ctx context.Context, fetcher core.Fetcher, files []string, dir string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating source directory: %w", err)
	}

	q := NewQueue()
	for _, f := range files {
		q.Add(f)
	}

	var errs error
	first := true
	for q.HasNext() {
		if !first {
			select {
			case <-ctx.Done():
				return multierr.Append(errs, ctx.Err())
			case <-time.After(InterRequestDelay):
			}
		}
		first = false

		name := q.Next()
		url := SourceURL(name)
		log.Info("fetching source", zap.String("url", url))

		body, err := fetcher.Fetch(ctx, url)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("fetch %s: %w", name, err))
			continue
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, body, 0644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		log.Info("saved source", zap.String("path", path), zap.Int("bytes", len(body)))
	}
	return errs
}
