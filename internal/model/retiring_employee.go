package model

import "time"

// RetiringEmployee is an employee approaching superannuation, tracked
// until a PPO is generated for them.
type RetiringEmployee struct {
	EmployeeUID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_uid"`
	EmployeeID     string     `gorm:"type:varchar(20);not null;uniqueIndex"          json:"employee_id"`
	Name           string     `gorm:"type:varchar(200);not null"                     json:"name"`
	Designation    string     `gorm:"type:varchar(100)"                              json:"designation,omitempty"`
	Department     string     `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	RetirementDate time.Time  `gorm:"type:date;not null"                             json:"retirement_date"`
	LastWorkingDay *time.Time `gorm:"type:date"                                      json:"last_working_day,omitempty"`
	BasicPay       float64    `gorm:"type:numeric(10,2)"                             json:"basic_pay,omitempty"`
	PensionAmount  float64    `gorm:"type:numeric(10,2)"                             json:"pension_amount,omitempty"`
	BankName       string     `gorm:"type:varchar(100)"                              json:"bank_name,omitempty"`
	AccountNumber  string     `gorm:"type:varchar(20)"                               json:"account_number,omitempty"`
	IFSCCode       string     `gorm:"type:varchar(11)"                               json:"ifsc_code,omitempty"`
	Address        string     `gorm:"type:text"                                      json:"address,omitempty"`
	Phone          string     `gorm:"type:varchar(15)"                               json:"phone,omitempty"`
	Email          string     `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	IsProcessed    bool       `gorm:"not null;default:false"                         json:"is_processed"`
	PPOGenerated   bool       `gorm:"not null;default:false"                         json:"ppo_generated"`
	PPOMasterID    *string    `gorm:"type:uuid"                                      json:"ppo_master_id,omitempty"`
	CreatedByID    *string    `gorm:"type:uuid"                                      json:"created_by_id,omitempty"`
	BaseModel

	PPOMaster *PPOMaster `gorm:"foreignKey:PPOMasterID;references:PPOMasterID" json:"ppo_master,omitempty"`
}

// TableName sets the table name.
func (RetiringEmployee) TableName() string { return "retiring_employees" }

// IsRetired reports whether the retirement date has passed.
func (e *RetiringEmployee) IsRetired(now time.Time) bool {
	return !e.RetirementDate.After(now)
}
