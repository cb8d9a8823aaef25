package model

import "time"

// Stage value recorded for registration and completion movements.
const (
	StageNew       = "New"
	StageCompleted = "Completed"
)

// CaseMovement is one append-only audit row per case transition.
// Rows are never updated or deleted; their order is the definitive
// case history.
type CaseMovement struct {
	MovementID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"movement_id"`
	CaseUID        string    `gorm:"column:case_uid;type:uuid;not null;index"       json:"case_uid"`
	MovementDate   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"movement_date"`
	FromStage      string    `gorm:"type:varchar(100);not null"                     json:"from_stage"`
	ToStage        string    `gorm:"type:varchar(100);not null"                     json:"to_stage"`
	FromHolderID   *string   `gorm:"type:uuid"                                      json:"from_holder_id,omitempty"`
	ToHolderID     string    `gorm:"type:uuid;not null"                             json:"to_holder_id"`
	Action         string    `gorm:"type:varchar(200);not null"                     json:"action"`
	Comments       string    `gorm:"type:text"                                      json:"comments,omitempty"`
	DaysInPrevious int       `gorm:"column:days_in_previous_stage;not null;default:0" json:"days_in_previous_stage"`
	UpdatedByID    string    `gorm:"type:uuid;not null"                             json:"updated_by_id"`

	FromHolder *UserProfile `gorm:"foreignKey:FromHolderID;references:UserID" json:"from_holder,omitempty"`
	ToHolder   *UserProfile `gorm:"foreignKey:ToHolderID;references:UserID"   json:"to_holder,omitempty"`
}

// TableName sets the table name.
func (CaseMovement) TableName() string { return "case_movements" }
