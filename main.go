package main

import (
	"PantryPal-Backend/cmd/config"
	migration "PantryPal-Backend/cmd/database/migrate"
	"PantryPal-Backend/internal/utils"
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, notificationService, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 0 * * *", func() {
		if err := notificationService.SweepExpiringItems(context.Background()); err != nil {
			log.Printf("expiry sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule expiry sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
