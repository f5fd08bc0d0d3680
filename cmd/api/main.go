package main

import (
	"context"

	"hvrdb/internal/config"
	"hvrdb/internal/handler"
	"hvrdb/internal/logger"
	"hvrdb/internal/repository"
	"hvrdb/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(config.LogLevel)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	storeService := service.NewStoreService(repo)

	searchHandler := handler.NewSearchHandler(storeService)
	nearestHandler := handler.NewNearestHandler(storeService)

	r := handler.NewRouter(searchHandler, nearestHandler)

	log.Info().Str("address", config.ServerAddress).Msg("serving store lookups")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
