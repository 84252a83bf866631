package main

import (
	"fmt"
	"os"
	"os/signal"

	"vocalwork/src/internal/config"
	"vocalwork/src/internal/delivery/http/middleware"
	"vocalwork/src/internal/repository"
	"vocalwork/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "VOCALWORK")
	viperConfig.SetDefault("web.port", 8080)
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.NewKafkaConfig(viperConfig)
	producer := config.NewKafkaProducer(viperConfig, logger)
	redisClient := config.NewRedis(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	recordingManager := config.NewRecordingManager(logger)

	store := repository.NewStore()
	if viperConfig.GetBool("app.seed_demo_data") || !viperConfig.IsSet("app.seed_demo_data") {
		repository.SeedDemoData(store)
	}

	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())
	config.Bootstrap(&config.BootstrapConfig{
		Store:            store,
		App:              app,
		Log:              logger,
		Validate:         validate,
		Config:           viperConfig,
		Producer:         producer,
		Redis:            redisClient,
		RecordingManager: recordingManager,
	})

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server vocalwork is shutting down...", "graceful", "")

		recordingManager.CloseAll()
		if producer != nil {
			producer.Close()
		}
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
