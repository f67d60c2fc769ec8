package main

import (
	"context"

	"github.com/Zharokiecoder/GITEX2/config"
	"github.com/Zharokiecoder/GITEX2/handlers"
	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/Zharokiecoder/GITEX2/router"
	"github.com/Zharokiecoder/GITEX2/services"
	"github.com/Zharokiecoder/GITEX2/store"
	filestore "github.com/Zharokiecoder/GITEX2/store/file"
	mongostore "github.com/Zharokiecoder/GITEX2/store/mongo"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	recordStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Storage.Backend, err)
	}
	defer func() {
		if err := recordStore.Close(ctx); err != nil {
			log.Errorw("Failed to close store", "error", err)
		}
	}()

	// Services
	submissionService := services.NewSubmissionService(recordStore)
	adminQueryService := services.NewAdminQueryService(recordStore)
	healthService := services.NewHealthService(recordStore, cfg.Server.Version)

	// Router setup
	r := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		SubmissionHandler: handlers.NewSubmissionHandler(submissionService),
		AdminHandler:      handlers.NewAdminHandler(adminQueryService),
		AuthHandler:       handlers.NewAuthHandler(cfg.Admin),
		HealthHandler:     handlers.NewHealthHandler(healthService),
	})

	log.Infof("Starting server on port %s (storage backend: %s)", cfg.Server.Port, recordStore.Backend())
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore selects the Record Store backend from configuration.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMongo:
		return mongostore.Connect(ctx, cfg.Storage.MongoURI, cfg.Storage.MongoDatabase)
	default:
		return filestore.Open(cfg.Storage.DataDir)
	}
}
