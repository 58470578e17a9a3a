package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/app"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/config"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	utils.InitLogger(config.AppName)
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file loaded; using process environment")
	}
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg, nil)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	metrics := utils.NewMetrics(cfg.AppName, nil)
	router := app.NewRouter(application, metrics)

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	utils.Logger.Infof("Starting %s on port: %s (API %s)", cfg.AppName, cfg.AppPort, cfg.APIBaseURL)
	if err := server.ListenAndServe(); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
