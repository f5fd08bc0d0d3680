package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"hvrdb/internal/config"
	"hvrdb/internal/dataset"
	"hvrdb/internal/export"
	"hvrdb/internal/pipeline"
)

// Runner drives a full run: download sources, build batches, write them out.
type Runner struct {
	cfg      config.Config
	log      zerolog.Logger
	pipeline *pipeline.Pipeline
	fetcher  *dataset.Fetcher
	writer   *export.Writer
}

// New creates a runner from configuration.
func New(cfg config.Config, logger zerolog.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		log: logger,
		pipeline: pipeline.New(pipeline.Options{
			Capacity:        cfg.Capacity,
			CoordinateFloor: cfg.CoordinateFloor,
		}, logger),
		fetcher: dataset.NewFetcher(cfg.DataDir, cfg.Fetch.Timeout, cfg.Fetch.Retries, logger),
		writer:  export.NewWriter(cfg.OutputDir, cfg.Format, logger),
	}
}

// Fetch downloads every configured source into the data directory.
func (r *Runner) Fetch(ctx context.Context) error {
	for _, src := range r.cfg.Sources() {
		if err := r.fetcher.Fetch(ctx, src.URL, src.File); err != nil {
			return err
		}
	}
	return nil
}

// Build loads the downloaded datasets, runs the pipeline and writes the batches.
func (r *Runner) Build(ctx context.Context) ([]export.Batch, error) {
	var batches []export.Batch

	for _, l := range r.cfg.Listings {
		branches, err := dataset.LoadListing(r.dataPath(l.Source), l.RootKey)
		if err != nil {
			return nil, fmt.Errorf("runner: listing %s: %w", l.Name, err)
		}
		r.log.Info().Str("dataset", l.Name).Int("branches", len(branches)).Msg("listing loaded")

		parts := r.pipeline.RunListing(branches)
		batches = append(batches, export.Batches(l.Output, l.Columns, parts...)...)
	}

	for _, f := range r.cfg.ChainFamilies {
		branches, err := dataset.LoadChainBranches(r.dataPath(f.Branches))
		if err != nil {
			return nil, fmt.Errorf("runner: chain family %s: %w", f.Name, err)
		}
		chains, err := dataset.LoadChains(r.dataPath(f.Chains), f.ChainsKey)
		if err != nil {
			return nil, fmt.Errorf("runner: chain family %s: %w", f.Name, err)
		}
		r.log.Info().Str("dataset", f.Name).Int("chains", len(chains)).Int("branches", branches.Len()).
			Msg("chain family loaded")

		first, second := r.pipeline.RunChainFamily(branches, chains)
		batches = append(batches, export.Batches(f.Output, f.Columns, first, second)...)
	}

	if err := export.PrepareDir(r.cfg.OutputDir); err != nil {
		return nil, err
	}
	if err := r.writer.WriteAll(ctx, batches); err != nil {
		return nil, err
	}

	return batches, nil
}

func (r *Runner) dataPath(src config.Source) string {
	return filepath.Join(r.cfg.DataDir, src.File)
}
