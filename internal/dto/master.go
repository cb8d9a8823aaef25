package dto

import "time"

// ── pensioner master data ──

// CreatePPORequest registers a pensioner master record.
type CreatePPORequest struct {
	PPONumber      string     `json:"ppo_number"      binding:"required,max=20"`
	Name           string     `json:"name"            binding:"required,max=200"`
	Designation    string     `json:"designation"     binding:"omitempty,max=100"`
	Department     string     `json:"department"      binding:"omitempty,max=100"`
	PensionType    string     `json:"pension_type"    binding:"omitempty,max=50"`
	RetirementDate *time.Time `json:"retirement_date"`
	BankName       string     `json:"bank_name"       binding:"omitempty,max=100"`
	AccountNumber  string     `json:"account_number"  binding:"omitempty,max=20"`
	BranchCode     string     `json:"branch_code"     binding:"omitempty,max=20"`
	Address        string     `json:"address"         binding:"omitempty"`
	Phone          string     `json:"phone"           binding:"omitempty,max=15"`
	Email          string     `json:"email"           binding:"omitempty,email"`
}

// UpdatePPORequest edits a pensioner master record.
type UpdatePPORequest struct {
	Name           *string    `json:"name"            binding:"omitempty,max=200"`
	Designation    *string    `json:"designation"     binding:"omitempty,max=100"`
	Department     *string    `json:"department"      binding:"omitempty,max=100"`
	PensionType    *string    `json:"pension_type"    binding:"omitempty,max=50"`
	RetirementDate *time.Time `json:"retirement_date"`
	BankName       *string    `json:"bank_name"       binding:"omitempty,max=100"`
	AccountNumber  *string    `json:"account_number"  binding:"omitempty,max=20"`
	Address        *string    `json:"address"`
	Phone          *string    `json:"phone"           binding:"omitempty,max=15"`
	Email          *string    `json:"email"           binding:"omitempty,email"`
	LastLCDoneDate *time.Time `json:"last_lc_done_date"`
	KYPFlag        *bool      `json:"kyp_flag"`
}

// PPOListRequest filters the pensioner master listing.
type PPOListRequest struct {
	PaginationRequest
	Search string `form:"search"`
}

// ── retiring employees ──

// CreateRetiringEmployeeRequest registers an employee approaching
// superannuation.
type CreateRetiringEmployeeRequest struct {
	EmployeeID     string     `json:"employee_id"      binding:"required,max=20"`
	Name           string     `json:"name"             binding:"required,max=200"`
	Designation    string     `json:"designation"      binding:"omitempty,max=100"`
	Department     string     `json:"department"       binding:"omitempty,max=100"`
	RetirementDate time.Time  `json:"retirement_date"  binding:"required"`
	LastWorkingDay *time.Time `json:"last_working_day"`
	BasicPay       float64    `json:"basic_pay"        binding:"omitempty,gte=0"`
	PensionAmount  float64    `json:"pension_amount"   binding:"omitempty,gte=0"`
	BankName       string     `json:"bank_name"        binding:"omitempty,max=100"`
	AccountNumber  string     `json:"account_number"   binding:"omitempty,max=20"`
	IFSCCode       string     `json:"ifsc_code"        binding:"omitempty,len=11"`
	Address        string     `json:"address"          binding:"omitempty"`
	Phone          string     `json:"phone"            binding:"omitempty,max=15"`
	Email          string     `json:"email"            binding:"omitempty,email"`
}

// GeneratePPOResponse reports the master record minted for a retiring
// employee.
type GeneratePPOResponse struct {
	PPOMasterID string `json:"ppo_master_id"`
	PPONumber   string `json:"ppo_number"`
}
