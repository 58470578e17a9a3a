package dtos

// AdminSummaryResponse is the body of GET /admin/summary.
type AdminSummaryResponse struct {
	Success    bool `json:"success"`
	AgentCount int  `json:"agent_count"`
}
