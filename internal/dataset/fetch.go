package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Fetcher downloads upstream dataset documents into a local directory.
type Fetcher struct {
	client  *http.Client
	dir     string
	retries int
	log     zerolog.Logger

	// initialInterval is the first retry delay; tests shorten it.
	initialInterval time.Duration
}

// NewFetcher creates a fetcher writing into dir. A request is attempted at most retries+1 times.
func NewFetcher(dir string, timeout time.Duration, retries int, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client:          &http.Client{Timeout: timeout},
		dir:             dir,
		retries:         retries,
		log:             logger,
		initialInterval: 500 * time.Millisecond,
	}
}

// Fetch downloads url into dir/file. The file is replaced atomically once the body has been read in full.
func (f *Fetcher) Fetch(ctx context.Context, url, file string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("fetch: failed to create %s: %w", f.dir, err)
	}
	dest := filepath.Join(f.dir, file)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.initialInterval
	retry := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(max(f.retries, 0))), ctx)

	attempt := 0
	op := func() error {
		attempt++
		err := f.download(ctx, url, dest)
		if err != nil {
			f.log.Warn().Err(err).Str("url", url).Int("attempt", attempt).Msg("download failed")
		}
		return err
	}

	if err := backoff.Retry(op, retry); err != nil {
		return fmt.Errorf("fetch: failed to download %s: %w", url, err)
	}

	f.log.Info().Str("url", url).Str("file", dest).Msg("dataset downloaded")
	return nil
}

func (f *Fetcher) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return backoff.Permanent(fmt.Errorf("unexpected status %s", resp.Status))
	}

	tmp, err := os.CreateTemp(f.dir, filepath.Base(dest)+".*.tmp")
	if err != nil {
		return backoff.Permanent(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return backoff.Permanent(err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return backoff.Permanent(err)
	}
	return nil
}
