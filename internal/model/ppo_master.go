package model

import "time"

// PPOMaster is the pensioner master record keyed by PPO number.
type PPOMaster struct {
	PPOMasterID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"ppo_master_id"`
	PPONumber      string     `gorm:"type:varchar(20);not null;uniqueIndex"          json:"ppo_number"`
	Name           string     `gorm:"type:varchar(200);not null"                     json:"name"`
	Designation    string     `gorm:"type:varchar(100)"                              json:"designation,omitempty"`
	Department     string     `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	PensionType    string     `gorm:"type:varchar(50)"                               json:"pension_type,omitempty"`
	RetirementDate *time.Time `gorm:"type:date"                                      json:"retirement_date,omitempty"`
	BankName       string     `gorm:"type:varchar(100)"                              json:"bank_name,omitempty"`
	AccountNumber  string     `gorm:"type:varchar(20)"                               json:"account_number,omitempty"`
	BranchCode     string     `gorm:"type:varchar(20)"                               json:"branch_code,omitempty"`
	Address        string     `gorm:"type:text"                                      json:"address,omitempty"`
	Phone          string     `gorm:"type:varchar(15)"                               json:"phone,omitempty"`
	Email          string     `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	LastLCDoneDate *time.Time `gorm:"type:date"                                      json:"last_lc_done_date,omitempty"` // last life certificate
	KYPFlag        bool       `gorm:"not null;default:false"                         json:"kyp_flag"`                    // know-your-pensioner verified
	BaseModel
}

// TableName sets the table name.
func (PPOMaster) TableName() string { return "ppo_masters" }
