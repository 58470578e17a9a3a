package utils

const (
	OrganizationName = "EstateHub"

	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"

	// Account types carried in User.Type and in the JWT "role" claim.
	AdminAccountType = "admin"
	AgentAccountType = "agent"
	UserAccountType  = "user"

	ResetTokenLength = 32
)
