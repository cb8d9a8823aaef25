package dto

// ── case types ──

// CreateCaseTypeRequest registers a case classification.
type CreateCaseTypeRequest struct {
	Name          string   `json:"name"           binding:"required,min=2,max=100"`
	SubCategories []string `json:"sub_categories" binding:"omitempty"`
	Priority      string   `json:"priority"       binding:"omitempty,oneof=High Medium Low"`
	ExpectedDays  int      `json:"expected_days"  binding:"omitempty,gte=1"`
	WorkflowType  string   `json:"workflow_type"  binding:"omitempty,oneof=Type_A Type_B Type_C Type_Extended"`
}

// UpdateCaseTypeRequest edits a case classification.
type UpdateCaseTypeRequest struct {
	SubCategories *[]string `json:"sub_categories"`
	Priority      *string   `json:"priority"       binding:"omitempty,oneof=High Medium Low"`
	ExpectedDays  *int      `json:"expected_days"  binding:"omitempty,gte=1"`
	WorkflowType  *string   `json:"workflow_type"  binding:"omitempty,oneof=Type_A Type_B Type_C Type_Extended"`
	IsActive      *bool     `json:"is_active"`
}

// ── requisition triggers ──

// CreateTriggerRequest registers an auto-requisition rule.
type CreateTriggerRequest struct {
	CaseTypeID  string   `json:"case_type_id" binding:"required,uuid"`
	RecordTypes []string `json:"record_types" binding:"required,min=1"`
}

// UpdateTriggerRequest edits an auto-requisition rule.
type UpdateTriggerRequest struct {
	RecordTypes *[]string `json:"record_types" binding:"omitempty,min=1"`
	IsActive    *bool     `json:"is_active"`
}

// ── system configuration ──

// UpdateSystemConfigRequest sets the office-wide defaults.
type UpdateSystemConfigRequest struct {
	DefaultApproverID    *string `json:"default_approver_id"     binding:"omitempty,uuid"`
	DefaultDealingHandID *string `json:"default_dealing_hand_id" binding:"omitempty,uuid"`
	RecordRoomLocationID *string `json:"record_room_location_id" binding:"omitempty,uuid"`
}

// ── family pension claims ──

// UpdateFamilyClaimRequest records claim paperwork progress.
type UpdateFamilyClaimRequest struct {
	ClaimStatus   *string `json:"claim_status"   binding:"omitempty,oneof=pending received processed rejected"`
	ClaimReceived *string `json:"claim_received" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes"`
}
