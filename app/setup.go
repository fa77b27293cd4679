package app

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/volodymyr-curly/university-sub001/api"
	"github.com/volodymyr-curly/university-sub001/config"
	"github.com/volodymyr-curly/university-sub001/database"
	"github.com/volodymyr-curly/university-sub001/router"
	"github.com/volodymyr-curly/university-sub001/services/cron"
)

func SetupAndRunServer() error {
	// Load environment variables
	if err := config.LoadENV(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	// Raw connection first to create the enum types AutoMigrate depends on
	pqStore, err := database.StartPostgreSQL()
	if err != nil {
		return err
	}
	if err := pqStore.InitEnums(); err != nil {
		pqStore.Close()
		return err
	}
	if err := pqStore.Close(); err != nil {
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		return err
	}

	// Background referential-integrity audit
	if env.CRON_ENABLED {
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			return fmt.Errorf("failed to get GORM DB instance for cron")
		}
		cronManager := cron.NewCronManager(db)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: failed to start cron jobs: %v", err)
		} else {
			defer cronManager.Stop()
		}
	}

	listenAddress := fmt.Sprintf(":%d", env.PORT)
	server := api.NewAPIServer(listenAddress)

	engine := server.GetEngine()
	engine.Use(logger.New())
	engine.Use(recover.New())

	router.SetupRoutes(engine, store)

	return server.Run()
}
