package model

// Record types.
const (
	RecordServiceBook = "SERVICE_BOOK"
	RecordPensionFile = "PENSION_FILE"
	RecordOther       = "OTHER"
)

// Record statuses.
const (
	RecordAvailable     = "AVAILABLE"
	RecordRequisitioned = "REQUISITIONED"
	RecordInUse         = "IN_USE"
	RecordMissing       = "MISSING"
	RecordArchived      = "ARCHIVED"
)

// Record is a physical artifact (service book, pension file) tied to one
// pensioner. Status and current_location must always agree with the
// latest RecordMovement row; the requisition workflow is the only
// writer of both.
type Record struct {
	RecordID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	RecordType        string  `gorm:"type:varchar(20);not null;uniqueIndex:idx_record_owner_type" json:"record_type"`
	PPOMasterID       string  `gorm:"type:uuid;not null;uniqueIndex:idx_record_owner_type"        json:"ppo_master_id"`
	Description       string  `gorm:"type:text"                                      json:"description,omitempty"`
	Status            string  `gorm:"type:varchar(20);not null;default:'AVAILABLE'"  json:"status"`
	CurrentLocationID string  `gorm:"type:uuid;not null"                             json:"current_location_id"`
	BaseModel

	PPOMaster       *PPOMaster `gorm:"foreignKey:PPOMasterID;references:PPOMasterID"       json:"ppo_master,omitempty"`
	CurrentLocation *Location  `gorm:"foreignKey:CurrentLocationID;references:LocationID"  json:"current_location,omitempty"`
}

// TableName sets the table name.
func (Record) TableName() string { return "records" }
