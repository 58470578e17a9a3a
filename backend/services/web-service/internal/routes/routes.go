package routes

const (
	Health         = "/health"
	Metrics        = "/metrics"
	Home           = "/"
	Agents         = "/agents"
	AgentProfile   = "/agents/{id}"
	Login          = "/login"
	AdminLogin     = "/admin/login"
	Logout         = "/logout"
	Admin          = "/admin"
	ForgotPassword = "/forgot-password"
)
