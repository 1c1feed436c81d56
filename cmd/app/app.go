package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/DRSN-tech/retail-backend/internal/app"
	config "github.com/DRSN-tech/retail-backend/internal/cfg"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	// В контейнере окружение приходит снаружи, .env нужен только локально.
	if err := godotenv.Load(); err != nil {
		log.Warnf(".env file not found, using environment variables")
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
