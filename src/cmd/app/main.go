package main

import (
	"fmt"
	"os"
	"os/signal"

	"moving-service/src/internal/config"
	"moving-service/src/internal/delivery/http/middleware"
	"moving-service/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "MOVING_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("asynq.concurrency", 5)
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.NewKafkaConfig(viperConfig)
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	geoservice, err := config.NewGeoService(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to init geoservice: %v", err), "main", "")
		os.Exit(1)
	}
	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer, asynqMux := config.NewAsynqServer(viperConfig)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())

	config.Bootstrap(&config.BootstrapConfig{
		DB:          db,
		App:         app,
		Log:         logger,
		Validate:    validate,
		Config:      viperConfig,
		Producer:    producer,
		Redis:       redisClient,
		Geoservice:  geoservice,
		AsynqClient: asynqClient,
		Async:       asynqMux,
	})

	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "main", "")
		}
	}()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	logger.Info("main", "Server moving-service is shutting down...", "graceful", "")
	asynqServer.Shutdown()
	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	if producer != nil {
		producer.Close()
	}
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
		}
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
