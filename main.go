package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"heath-crm-backend/config"
	"heath-crm-backend/models"
	"heath-crm-backend/routes"
	"heath-crm-backend/services"
	"heath-crm-backend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Users always live in the local database, whichever driver holds the
	// entity data.
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("migrate users: %v", err)
	}

	// The backend driver is chosen once at startup; there is no per-call
	// switching.
	var driver store.Store
	switch cfg.DataSource {
	case config.DriverPostgres:
		gs := store.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			log.Fatalf("migrate entities: %v", err)
		}
		driver = gs
	case config.DriverSheets:
		ss := store.NewSheetStore(cfg.SheetsURL)
		services.NewMigrationService(ss).StartScheduler()
		driver = ss
	case config.DriverRest:
		driver = store.NewRestStore(cfg.RestAPIURL)
	}

	facade := store.NewFacade(driver)

	r := routes.SetupRouter(db, facade)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
