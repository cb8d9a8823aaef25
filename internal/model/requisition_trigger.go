package model

// Trigger events.
const (
	TriggerOnCaseCreation = "ON_CASE_CREATION"
)

// RequisitionTrigger is a rule that auto-creates a record requisition
// when a case of the given type is registered.
type RequisitionTrigger struct {
	TriggerID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"trigger_id"`
	CaseTypeID   string `gorm:"type:uuid;not null;index"                       json:"case_type_id"`
	TriggerEvent string `gorm:"type:varchar(30);not null;default:'ON_CASE_CREATION'" json:"trigger_event"`
	RecordTypes  string `gorm:"type:varchar(200);not null"                     json:"record_types"` // comma-separated record type names
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	CaseType *CaseType `gorm:"foreignKey:CaseTypeID;references:CaseTypeID" json:"case_type,omitempty"`
}

// TableName sets the table name.
func (RequisitionTrigger) TableName() string { return "requisition_triggers" }
