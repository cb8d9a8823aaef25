package model

import "time"

// Grievance statuses.
const (
	GrvNew             = "NEW"
	GrvUnderReview     = "UNDER_REVIEW"
	GrvActionInitiated = "ACTION_INITIATED"
	GrvResolved        = "RESOLVED"
	GrvClosed          = "CLOSED"
)

// Grievance is a citizen complaint that may be escalated into exactly
// one formal case. Once generated_case_uid is set the grievance stays
// ACTION_INITIATED forever and cannot spawn a second case.
type Grievance struct {
	ID               string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	GrievanceID      string     `gorm:"type:varchar(50);not null;uniqueIndex"          json:"grievance_id"` // GRV-YYYY-MM-NNNN
	ReceivedDate     time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"received_date"`
	PensionerName    string     `gorm:"type:varchar(200);not null"                     json:"pensioner_name"`
	PPOMasterID      *string    `gorm:"type:uuid"                                      json:"ppo_master_id,omitempty"`
	ComplainantName  string     `gorm:"type:varchar(200)"                              json:"complainant_name,omitempty"`
	ContactNumber    string     `gorm:"type:varchar(15)"                               json:"contact_number,omitempty"`
	Email            string     `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Subject          string     `gorm:"type:varchar(500);not null"                     json:"subject"`
	Description      string     `gorm:"type:text"                                      json:"description,omitempty"`
	Status           string     `gorm:"type:varchar(20);not null;default:'NEW'"        json:"status"`
	AssignedToID     *string    `gorm:"type:uuid"                                      json:"assigned_to_id,omitempty"`
	GeneratedCaseUID *string    `gorm:"column:generated_case_uid;type:uuid;uniqueIndex" json:"generated_case_uid,omitempty"`
	BaseModel

	PPOMaster     *PPOMaster   `gorm:"foreignKey:PPOMasterID;references:PPOMasterID" json:"ppo_master,omitempty"`
	AssignedTo    *UserProfile `gorm:"foreignKey:AssignedToID;references:UserID"     json:"assigned_to,omitempty"`
	GeneratedCase *Case        `gorm:"foreignKey:GeneratedCaseUID;references:ID"     json:"generated_case,omitempty"`
}

// TableName sets the table name.
func (Grievance) TableName() string { return "grievances" }
