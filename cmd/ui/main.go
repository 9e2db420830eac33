package main

import (
	"log"

	"github.com/joho/godotenv"

	"roasdash/adapters/sample"
	"roasdash/app"
	"roasdash/internal"
	"roasdash/internal/config"
	"roasdash/internal/session"
	"roasdash/ui"
)

// Serves the server-rendered HTML dashboard instead of the JSON API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	sampleCfg := sample.DefaultConfig()
	sampleCfg.Seed = appConfig.Sample.Seed
	sampleCfg.InfluencerCount = appConfig.Sample.InfluencerCount
	sampleCfg.PostCount = appConfig.Sample.PostCount
	sampleCfg.TrackingSamples = appConfig.Sample.TrackingSamples

	store := session.NewStore(sampleCfg)
	service := app.NewDashboardService(store, logger)

	dashboard, err := ui.NewApp(service, logger)
	if err != nil {
		log.Fatalf("Failed to create dashboard app: %v", err)
	}

	if err := dashboard.Run(appConfig.Server.Port); err != nil {
		log.Fatalf("Dashboard stopped: %v", err)
	}
}
