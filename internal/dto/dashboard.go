package dto

// ── dashboard ──

// DashboardResponse is the cached landing-page summary.
type DashboardResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Overdue   int64 `json:"overdue"`
	MyCases   int64 `json:"my_cases"` // pending cases held by the viewer

	ByPriority map[string]int64 `json:"by_priority"`        // pending cases per priority
	ByStage    map[string]int64 `json:"by_stage,omitempty"` // pending cases per holder role, ADMIN only

	Grievances map[string]int64 `json:"grievances"` // grievances per status

	RecentCases []DashboardCase `json:"recent_cases"`
}

// DashboardCase is one row of the recent-cases panel.
type DashboardCase struct {
	CaseID        string `json:"case_id"`
	CaseTitle     string `json:"case_title"`
	CaseType      string `json:"case_type"`
	Priority      string `json:"priority"`
	StatusColor   string `json:"status_color"`
	CurrentHolder string `json:"current_holder"`
	IsCompleted   bool   `json:"is_completed"`
}
