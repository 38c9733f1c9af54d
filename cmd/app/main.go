package main

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tracking/cmd"
	"tracking/internal/adapters/out/postgres/accountrepo"
	"tracking/internal/adapters/out/postgres/boxrepo"
	"tracking/internal/adapters/out/postgres/eventrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/shipmentrepo"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)

	root := cmd.NewCompositionRoot(configs, db)
	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Absence of a .env file is fine in containerized deployments where
	// the environment is set directly.
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		log.Fatalf("parsing configuration: %v", err)
	}
	return config
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	// TranslateError is required so unique constraint violations surface
	// as gorm.ErrDuplicatedKey for the repositories.
	db, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&accountrepo.CompanyDTO{},
		&accountrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&boxrepo.BoxDTO{},
		&shipmentrepo.ShipmentDTO{},
		&eventrepo.EventDTO{},
	)
	if err != nil {
		log.Fatalf("running migrations: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := root.CreateServer()
	server.RegisterRoutes(e, root.CreateAuthMiddleware())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
