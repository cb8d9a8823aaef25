package dto

import "time"

// ── cases ──

// RegisterCaseRequest is the case intake form. Which of the optional
// blocks apply depends on the selected case type; the service validates
// the combination.
type RegisterCaseRequest struct {
	CaseTypeID      string `json:"case_type_id"     binding:"required,uuid"`
	SubCategory     string `json:"sub_category"     binding:"omitempty,max=100"`
	CaseTitle       string `json:"case_title"       binding:"required,max=500"`
	CaseDescription string `json:"case_description" binding:"omitempty"`
	ApplicantName   string `json:"applicant_name"   binding:"required,max=200"`
	Priority        string `json:"priority"         binding:"omitempty,oneof=High Medium Low"`

	PPONumber     string `json:"ppo_number"      binding:"omitempty,max=20"`
	PensionerName string `json:"pensioner_name"  binding:"omitempty,max=200"`
	MobileNumber  string `json:"mobile_number"   binding:"omitempty,max=15"`
	ModeOfReceipt string `json:"mode_of_receipt" binding:"omitempty"`

	// Death Intimation block.
	DateOfDeath  *time.Time `json:"date_of_death"`
	ClaimantName string     `json:"claimant_name" binding:"omitempty,max=200"`
	Relationship string     `json:"relationship"  binding:"omitempty,max=50"`

	ServiceBookEnclosed bool   `json:"service_book_enclosed"`
	TypeOfCorrection    string `json:"type_of_correction"  binding:"omitempty,max=30"`
	FreshOrCompliance   string `json:"fresh_or_compliance" binding:"omitempty,max=20"`

	// New-PPO block.
	TypeOfEmployee     string     `json:"type_of_employee"     binding:"omitempty,max=20"`
	RetiringEmployeeID string     `json:"retiring_employee_id" binding:"omitempty,uuid"`
	TypeOfPension      string     `json:"type_of_pension"      binding:"omitempty,max=20"`
	TypeOfPensioner    string     `json:"type_of_pensioner"    binding:"omitempty,max=30"`
	DateOfRetirement   *time.Time `json:"date_of_retirement"`
}

// MoveCaseRequest advances, returns, reassigns or completes a case.
type MoveCaseRequest struct {
	Action         string `json:"action"           binding:"required,oneof=forward backward reassign complete"`
	TargetHolderID string `json:"target_holder_id" binding:"omitempty,uuid"`
	Comments       string `json:"comments"         binding:"omitempty"`
}

// CaseListRequest filters the case listing.
type CaseListRequest struct {
	PaginationRequest
	CaseTypeID string `form:"case_type_id"`
	Priority   string `form:"priority"`
	Status     string `form:"status" binding:"omitempty,oneof=pending completed overdue"`
	HolderID   string `form:"holder_id"`
	Search     string `form:"search"`
	Mine       bool   `form:"mine"` // only cases currently on the caller's desk
}

// AvailableHoldersRequest asks which users may receive a given case
// for the given action.
type AvailableHoldersRequest struct {
	Action string `form:"action" binding:"required,oneof=forward backward reassign"`
}

// ImportCasesResponse summarizes a bulk CSV intake.
type ImportCasesResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
