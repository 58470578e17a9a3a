package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/app"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/config"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/controllers"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/routes"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/services"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-middleware"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const startupTimeout = 30 * time.Second

func main() {
	utils.InitLogger(config.AppName)
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file loaded; using process environment")
	}
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	if err := app.EnsureSchema(startupCtx, application.DB); err != nil {
		utils.Logger.Fatal("Failed to bootstrap schema:", err)
	}

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	agentRepo := repositories.NewAgentRepository(application.DB)
	propertyRepo := repositories.NewPropertyRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)
	resetRepo := repositories.NewPasswordResetRepository(application.DB)

	if cfg.LDFlag_SeedDbWithTestAccounts {
		if err := app.SeedAll(startupCtx, agentRepo, propertyRepo, userRepo); err != nil {
			utils.Logger.Fatal("Failed to seed demo data:", err)
		}
	}
	cancel()

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	jwtService := services.NewJWTService(cfg.RSAPrivateKey)
	emailService := services.NewEmailService(cfg)
	agentService := services.NewAgentService(agentRepo)
	authService := services.NewAuthService(userRepo, jwtService, cfg.TokenExpiry)
	resetService := services.NewPasswordResetService(
		userRepo,
		resetRepo,
		emailService,
		services.PasswordResetOptions{
			TokenExpiry:      cfg.ResetTokenExpiry,
			ExposeResetToken: cfg.LDFlag_ExposeResetToken,
		},
	)
	tokenCleanupService := services.NewTokenCleanupService(resetRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	healthController := controllers.NewHealthController(application.DB)
	agentController := controllers.NewAgentController(agentService)
	authController := controllers.NewAuthController(authService, resetService)
	adminController := controllers.NewAdminController(agentService)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	metrics := utils.NewMetrics(cfg.AppName, nil)

	router := mux.NewRouter().UseEncodedPath()
	router.Use(metrics.Middleware)

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")
	router.Handle(routes.Metrics, promhttp.Handler()).Methods("GET")

	// Agents (public)
	router.HandleFunc(routes.Agents, agentController.ListAgentsHandler).Methods("GET")
	router.HandleFunc(routes.AgentsByArea, agentController.SearchByAreaHandler).Methods("GET")
	router.HandleFunc(routes.AgentsByProperty, agentController.SearchByPropertyHandler).Methods("GET")
	router.HandleFunc(routes.AgentByID, agentController.GetAgentHandler).Methods("GET")

	// Auth (public)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods("POST")
	router.HandleFunc(routes.AuthForgotPassword, authController.ForgotPasswordHandler).Methods("POST")
	router.HandleFunc(routes.AuthResetPassword, authController.ResetPasswordHandler).Methods("POST")

	// Protected endpoints require a valid token
	requireUser := middleware.AuthMiddleware(cfg.RSAPublicKey)
	requireAdmin := middleware.AdminAuthMiddleware(cfg.RSAPublicKey)
	router.Handle(routes.AuthMe, requireUser(http.HandlerFunc(authController.MeHandler))).Methods("GET")
	router.Handle(routes.AdminSummary, requireAdmin(http.HandlerFunc(adminController.SummaryHandler))).Methods("GET")

	//----------------------------------------------------------------------
	// Daily reset-token cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()
	_, schErr := c.AddFunc("0 3 * * *", func() {
		if e := tokenCleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled reset-token cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule reset-token cleanup job")
	}
	c.Start()
	defer c.Stop()

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
