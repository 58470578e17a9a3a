package routes

const (
	// Health & metrics
	Health  = "/health"
	Metrics = "/metrics"

	// Agents
	Agents           = "/agents"
	AgentsByArea     = "/agents/search/{area}"
	AgentsByProperty = "/agents/by-property/{query}"
	AgentByID        = "/agents/{id}"

	// Auth
	AuthLogin          = "/auth/login"
	AuthForgotPassword = "/auth/forgot-password"
	AuthResetPassword  = "/auth/reset-password"
	AuthMe             = "/auth/me"

	// Admin
	AdminSummary = "/admin/summary"
)
