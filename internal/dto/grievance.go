package dto

// ── grievances ──

// RegisterGrievanceRequest files a new citizen grievance.
type RegisterGrievanceRequest struct {
	PensionerName   string `json:"pensioner_name"   binding:"required,max=200"`
	PPONumber       string `json:"ppo_number"       binding:"omitempty,max=20"`
	ComplainantName string `json:"complainant_name" binding:"omitempty,max=200"`
	ContactNumber   string `json:"contact_number"   binding:"omitempty,max=15"`
	Email           string `json:"email"            binding:"omitempty,email"`
	Subject         string `json:"subject"          binding:"required,max=500"`
	Description     string `json:"description"      binding:"omitempty"`
}

// UpdateGrievanceRequest edits status or assignment of a grievance.
type UpdateGrievanceRequest struct {
	Status       *string `json:"status"         binding:"omitempty,oneof=NEW UNDER_REVIEW ACTION_INITIATED RESOLVED CLOSED"`
	AssignedToID *string `json:"assigned_to_id" binding:"omitempty,uuid"`
}

// EscalateGrievanceRequest converts a grievance into a formal case.
type EscalateGrievanceRequest struct {
	CaseTypeID string `json:"case_type_id" binding:"required,uuid"`
	Priority   string `json:"priority"     binding:"omitempty,oneof=High Medium Low"`
	Comments   string `json:"comments"     binding:"omitempty,max=500"`
}

// GrievanceListRequest filters the grievance listing.
type GrievanceListRequest struct {
	PaginationRequest
	Status    string `form:"status"`
	PPONumber string `form:"ppo_number"`
	Search    string `form:"search"`
}
