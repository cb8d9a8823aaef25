package model

// UserProfile wraps a login identity with its approval-hierarchy rank.
// Role is immutable input to every workflow and hierarchy check.
type UserProfile struct {
	UserID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username       string `gorm:"type:varchar(150);not null;uniqueIndex"         json:"username"`
	FullName       string `gorm:"type:varchar(200);not null"                     json:"full_name"`
	PasswordHash   string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role           string `gorm:"type:varchar(10);not null"                      json:"role"` // DH | AAO | AO | Dy.CCA | Jt.CCA | CCA | Pr.CCA | ADMIN
	Phone          string `gorm:"type:varchar(15)"                               json:"phone,omitempty"`
	Department     string `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	IsActiveHolder bool   `gorm:"not null;default:true"                          json:"is_active_holder"` // eligible to receive case assignments
	IsRecordKeeper bool   `gorm:"not null;default:false"                         json:"is_record_keeper"` // eligible to execute physical handovers
	BaseModel
}

// TableName sets the table name.
func (UserProfile) TableName() string { return "user_profiles" }
