package model

// Location types.
const (
	LocationRecordRoom = "RECORD_ROOM"
	LocationOffice     = "OFFICE"
	LocationUserDesk   = "USER_DESK"
)

// Location is a place a physical record can rest: a record room, an
// external office, or one user's desk. A custodian owns at most one
// desk; the partial unique index in the schema enforces it.
type Location struct {
	LocationID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	Name         string  `gorm:"type:varchar(200);not null"                     json:"name"`
	LocationType string  `gorm:"type:varchar(20);not null"                      json:"location_type"` // RECORD_ROOM | OFFICE | USER_DESK
	CustodianID  *string `gorm:"type:uuid"                                      json:"custodian_id,omitempty"` // set only for USER_DESK
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Custodian *UserProfile `gorm:"foreignKey:CustodianID;references:UserID" json:"custodian,omitempty"`
}

// TableName sets the table name.
func (Location) TableName() string { return "locations" }
