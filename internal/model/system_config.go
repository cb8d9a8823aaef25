package model

// SystemConfig is the single row of named office-wide defaults.
// Making these explicit keeps the automated flows deterministic
// instead of depending on whichever row a query finds first.
type SystemConfig struct {
	ID                   int     `gorm:"primaryKey"   json:"id"` // always 1
	DefaultApproverID    *string `gorm:"type:uuid"    json:"default_approver_id,omitempty"`     // AAO for auto-created requisitions
	DefaultDealingHandID *string `gorm:"type:uuid"    json:"default_dealing_hand_id,omitempty"` // initial holder for escalated grievances
	RecordRoomLocationID *string `gorm:"type:uuid"    json:"record_room_location_id,omitempty"` // canonical return destination
	BaseModel

	DefaultApprover    *UserProfile `gorm:"foreignKey:DefaultApproverID;references:UserID"       json:"default_approver,omitempty"`
	DefaultDealingHand *UserProfile `gorm:"foreignKey:DefaultDealingHandID;references:UserID"    json:"default_dealing_hand,omitempty"`
	RecordRoomLocation *Location    `gorm:"foreignKey:RecordRoomLocationID;references:LocationID" json:"record_room_location,omitempty"`
}

// TableName sets the table name.
func (SystemConfig) TableName() string { return "system_config" }
