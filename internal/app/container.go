package app

import (
	"context"
	"log"
	"os"
	"time"

	"competency-matrix/internal/config"
	"competency-matrix/internal/database"
	dbpostgres "competency-matrix/internal/database/postgres"
	"competency-matrix/internal/database/schema"
	"competency-matrix/internal/delivery/http/handler"
	"competency-matrix/internal/delivery/http/routes"
	"competency-matrix/internal/infrastructure/cache"
	"competency-matrix/internal/repository"
	"competency-matrix/internal/usecase"
)

type Container struct {
	Config   config.Config
	Logger   *log.Logger
	Handle   *database.Handle
	Cache    *cache.Redis
	Registry *routes.Registry

	db database.DB
}

// NewContainer wires the object graph. A store that cannot be reached is not
// fatal: the service starts with an empty handle and data endpoints answer
// 500 until a restart with a working store.
func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	handle := database.EmptyHandle()
	var db database.DB
	if !cfg.Database.Configured() {
		logger.Printf("[Store] no connection settings, running without store")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		conn, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Printf("[Store] connect failed, running without store: %v", err)
		} else if err := schema.Ensure(ctx, conn); err != nil {
			logger.Printf("[Store] schema ensure failed, running without store: %v", err)
			_ = conn.Close()
		} else {
			db = conn
			handle = database.NewHandle(conn)
		}
	}

	rcache := cache.NewRedis(logger)

	matrixRepo := repository.NewPostgresMatrixRepository(handle)
	standardRepo := repository.NewPostgresStandardRepository(handle)
	definitionRepo := repository.NewPostgresDefinitionRepository(handle)

	ingestUC := usecase.NewIngestUsecase(matrixRepo, standardRepo, definitionRepo, rcache, logger)
	catalogUC := usecase.NewCatalogUsecase(matrixRepo, standardRepo, definitionRepo, rcache, logger)

	registry := routes.NewRegistry(
		handler.NewStatusHandler(handle, rcache),
		handler.NewIngestHandler(ingestUC),
		handler.NewCatalogHandler(catalogUC),
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Handle:   handle,
		Cache:    rcache,
		Registry: registry,
		db:       db,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
