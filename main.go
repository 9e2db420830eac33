package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/joho/godotenv"

	"roasdash/adapters/sample"
	"roasdash/app"
	"roasdash/internal"
	"roasdash/internal/config"
	"roasdash/internal/session"
	"roasdash/ui"
)

func main() {
	// Load environment variables from .env file
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

	if appConfig.Profiling.Enabled {
		go func() {
			logger.Info("pprof listening on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				logger.Warn("pprof server stopped: %v", err)
			}
		}()
		// Give the pprof listener a moment before the main server claims logs
		time.Sleep(50 * time.Millisecond)
	}

	server := ui.NewServer(appConfig, service, logger)
	if err := server.Run(appConfig.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
