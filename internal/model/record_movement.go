package model

import "time"

// RecordMovement is the append-only custody trail: one row per hop of
// one record between two locations. It is the only durable proof of
// the custody chain and is never mutated.
type RecordMovement struct {
	RecordMovementID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_movement_id"`
	RecordID         string  `gorm:"type:uuid;not null;index"                       json:"record_id"`
	FromLocationID   *string `gorm:"type:uuid"                                      json:"from_location_id,omitempty"`
	ToLocationID     string  `gorm:"type:uuid;not null"                             json:"to_location_id"`
	RequisitionID    *string `gorm:"type:uuid"                                      json:"requisition_id,omitempty"`
	AcknowledgedByID string  `gorm:"type:uuid;not null"                             json:"acknowledged_by_id"`
	MovedAt          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"           json:"moved_at"`
	Remarks          string  `gorm:"type:text"                                      json:"remarks,omitempty"`

	Record       *Record   `gorm:"foreignKey:RecordID;references:RecordID"         json:"record,omitempty"`
	FromLocation *Location `gorm:"foreignKey:FromLocationID;references:LocationID" json:"from_location,omitempty"`
	ToLocation   *Location `gorm:"foreignKey:ToLocationID;references:LocationID"   json:"to_location,omitempty"`
}

// TableName sets the table name.
func (RecordMovement) TableName() string { return "record_movements" }
