package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/controllers"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/routes"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// NewRouter registers every page. metrics may be nil.
func NewRouter(a *App, metrics *utils.Metrics) *mux.Router {
	healthController := controllers.NewHealthController()
	homeController := controllers.NewHomeController(a.Renderer, a.Sessions, a.Agents, a.Config.FeaturedLimit)
	agentsController := controllers.NewAgentsController(a.Renderer, a.Sessions, a.Agents)
	authController := controllers.NewAuthController(a.Renderer, a.Sessions, a.UserLogin, a.AdminLogin)
	adminController := controllers.NewAdminController(a.Renderer, a.Sessions, a.API)
	resetController := controllers.NewPasswordResetController(a.Renderer, a.Sessions, a.API, a.ResetStates, a.Config.RedirectDelay)
	errorController := controllers.NewErrorController(a.Renderer, a.Sessions)

	router := mux.NewRouter()
	if metrics != nil {
		router.Use(metrics.Middleware)
	}
	router.NotFoundHandler = http.HandlerFunc(errorController.NotFoundHandler)

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")
	router.Handle(routes.Metrics, promhttp.Handler()).Methods("GET")

	// Agent pages
	router.HandleFunc(routes.Home, homeController.HomeHandler).Methods("GET")
	router.HandleFunc(routes.Agents, agentsController.DirectoryHandler).Methods("GET")
	router.HandleFunc(routes.AgentProfile, agentsController.ProfileHandler).Methods("GET")

	// Sign-in
	router.HandleFunc(routes.Login, authController.LoginPageHandler).Methods("GET")
	router.HandleFunc(routes.Login, authController.LoginHandler).Methods("POST")
	router.HandleFunc(routes.AdminLogin, authController.AdminLoginPageHandler).Methods("GET")
	router.HandleFunc(routes.AdminLogin, authController.AdminLoginHandler).Methods("POST")
	router.HandleFunc(routes.Logout, authController.LogoutHandler).Methods("POST")

	router.HandleFunc(routes.Admin, adminController.DashboardHandler).Methods("GET")

	router.HandleFunc(routes.ForgotPassword, resetController.PageHandler).Methods("GET")
	router.HandleFunc(routes.ForgotPassword, resetController.SubmitHandler).Methods("POST")

	return router
}
