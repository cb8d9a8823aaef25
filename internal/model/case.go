package model

import "time"

// Mode-of-receipt values for incoming correspondence.
const (
	ReceiptByPost   = "by_post"
	ReceiptByHand   = "by_hand"
	ReceiptOnline   = "online"
	ReceiptOffline  = "offline"
	ReceiptEmail    = "email"
	ReceiptInPerson = "in_person"
)

// Case is a pension case file moving through the approval hierarchy.
// Cases are never deleted; completion is the soft terminal state.
// All mutation goes through the case service so that every transition
// leaves exactly one CaseMovement row behind.
type Case struct {
	ID               string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CaseID           string     `gorm:"type:varchar(50);not null;uniqueIndex"          json:"case_id"` // CASE-YYYY-MM-NNNN
	RegistrationDate time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"registration_date"`
	CaseTypeID       string     `gorm:"type:uuid;not null"                             json:"case_type_id"`
	SubCategory      string     `gorm:"type:varchar(100)"                              json:"sub_category"`
	CaseTitle        string     `gorm:"type:varchar(500);not null"                     json:"case_title"`
	CaseDescription  string     `gorm:"type:text"                                      json:"case_description"`
	ApplicantName    string     `gorm:"type:varchar(200);not null"                     json:"applicant_name"`
	PPOMasterID      *string    `gorm:"type:uuid"                                      json:"ppo_master_id,omitempty"`
	Priority         string     `gorm:"type:varchar(10);not null;default:'Medium'"     json:"priority"`
	CurrentStatus    string     `gorm:"type:varchar(200)"                              json:"current_status"`
	CurrentHolderID  string     `gorm:"type:uuid;not null"                             json:"current_holder_id"`
	DaysInCurrent    int        `gorm:"column:days_in_current_stage;not null;default:0" json:"days_in_current_stage"`
	TotalDaysPending int        `gorm:"not null;default:0"                             json:"total_days_pending"`
	ExpectedDone     time.Time  `gorm:"column:expected_completion;not null"            json:"expected_completion"`
	ActualDone       *time.Time `gorm:"column:actual_completion"                       json:"actual_completion,omitempty"`
	StatusColor      string     `gorm:"type:varchar(10);not null;default:'Green'"      json:"status_color"`
	IsCompleted      bool       `gorm:"not null;default:false"                         json:"is_completed"`
	CreatedByID      string     `gorm:"type:uuid;not null"                             json:"created_by_id"`
	LastUpdatedByID  string     `gorm:"type:uuid;not null"                             json:"last_updated_by_id"`
	LastUpdateDate   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"last_update_date"`

	// Correspondence and pensioner details captured on the intake form.
	PPONumber           string     `gorm:"type:varchar(20)"  json:"ppo_number,omitempty"`
	PensionerName       string     `gorm:"type:varchar(200)" json:"pensioner_name,omitempty"`
	MobileNumber        string     `gorm:"type:varchar(15)"  json:"mobile_number,omitempty"`
	ModeOfReceipt       string     `gorm:"type:varchar(20)"  json:"mode_of_receipt,omitempty"`
	DateOfDeath         *time.Time `gorm:"type:date"         json:"date_of_death,omitempty"`
	ClaimantName        string     `gorm:"type:varchar(200)" json:"claimant_name,omitempty"`
	Relationship        string     `gorm:"type:varchar(50)"  json:"relationship,omitempty"`
	ServiceBookEnclosed bool       `gorm:"not null;default:false" json:"service_book_enclosed"`
	TypeOfCorrection    string     `gorm:"type:varchar(30)"  json:"type_of_correction,omitempty"`
	FreshOrCompliance   string     `gorm:"type:varchar(20)"  json:"fresh_or_compliance,omitempty"`
	TypeOfEmployee      string     `gorm:"type:varchar(20)"  json:"type_of_employee,omitempty"`
	RetiringEmployeeID  *string    `gorm:"type:uuid"         json:"retiring_employee_id,omitempty"`
	TypeOfPension       string     `gorm:"type:varchar(20)"  json:"type_of_pension,omitempty"`
	TypeOfPensioner     string     `gorm:"type:varchar(30)"  json:"type_of_pensioner,omitempty"`
	DateOfRetirement    *time.Time `gorm:"type:date"         json:"date_of_retirement,omitempty"`

	BaseModel

	CaseType         *CaseType         `gorm:"foreignKey:CaseTypeID;references:CaseTypeID"              json:"case_type,omitempty"`
	CurrentHolder    *UserProfile      `gorm:"foreignKey:CurrentHolderID;references:UserID"             json:"current_holder,omitempty"`
	PPOMaster        *PPOMaster        `gorm:"foreignKey:PPOMasterID;references:PPOMasterID"            json:"ppo_master,omitempty"`
	RetiringEmployee *RetiringEmployee `gorm:"foreignKey:RetiringEmployeeID;references:EmployeeUID"     json:"retiring_employee,omitempty"`
}

// TableName sets the table name.
func (Case) TableName() string { return "cases" }

// IsOverdue reports whether a pending case has passed its deadline.
func (c *Case) IsOverdue(now time.Time) bool {
	return !c.IsCompleted && c.ExpectedDone.Before(now)
}
