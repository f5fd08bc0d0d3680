package main

import (
	"context"
	"flag"

	"hvrdb/internal/config"
	"hvrdb/internal/export"
	"hvrdb/internal/logger"
	"hvrdb/internal/models"
	"hvrdb/internal/repository"
	"hvrdb/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type dataset struct {
	name    string
	output  string
	columns []config.Column
	source  models.Source
}

func main() {
	configPath := flag.String("config", "./configs", "directory containing hvrdb.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel)

	if cfg.Format != export.FormatCSV {
		log.Fatal().Str("format", cfg.Format).Msg("importer reads csv batches only")
	}

	ctx := context.Background()

	// Database connection
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.CreateSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}
	importer := service.NewImportService(repo, log.Logger)

	var datasets []dataset
	for _, l := range cfg.Listings {
		datasets = append(datasets, dataset{name: l.Name, output: l.Output, columns: l.Columns, source: models.SourceListing})
	}
	for _, f := range cfg.ChainFamilies {
		datasets = append(datasets, dataset{name: f.Name, output: f.Output, columns: f.Columns, source: models.SourceChain})
	}

	for _, d := range datasets {
		files, err := export.BatchFiles(cfg.OutputDir, d.output)
		if err != nil {
			log.Fatal().Err(err).Str("dataset", d.name).Msg("cannot list batches")
		}
		if len(files) == 0 {
			log.Warn().Str("dataset", d.name).Msg("no batches found, run the build first")
			continue
		}

		var stores []models.Store
		for _, file := range files {
			batch, err := export.ReadCSV(file, d.columns, d.source)
			if err != nil {
				log.Fatal().Err(err).Str("file", file).Msg("cannot read batch")
			}
			stores = append(stores, batch...)
		}

		if _, err := importer.ImportDataset(ctx, d.name, stores); err != nil {
			log.Fatal().Err(err).Str("dataset", d.name).Msg("import failed")
		}
	}

	log.Info().Int("datasets", len(datasets)).Msg("import finished")
}
