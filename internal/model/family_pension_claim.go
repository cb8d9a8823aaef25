package model

import "time"

// Family pension claim statuses.
const (
	ClaimPending   = "pending"
	ClaimReceived  = "received"
	ClaimProcessed = "processed"
	ClaimRejected  = "rejected"
)

// FamilyPensionClaim tracks the claim paperwork attached to a Death
// Intimation case. Created automatically when such a case is registered.
type FamilyPensionClaim struct {
	ClaimID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"claim_id"`
	CaseUID       string     `gorm:"column:case_uid;type:uuid;not null;uniqueIndex" json:"case_uid"`
	ClaimReceived *time.Time `gorm:"type:date"                                      json:"claim_received,omitempty"`
	ClaimStatus   string     `gorm:"type:varchar(50);not null;default:'pending'"    json:"claim_status"`
	Notes         string     `gorm:"type:text"                                      json:"notes,omitempty"`
	PPOMasterID   *string    `gorm:"type:uuid"                                      json:"ppo_master_id,omitempty"`
	CreatedByID   *string    `gorm:"type:uuid"                                      json:"created_by_id,omitempty"`
	BaseModel

	Case      *Case      `gorm:"foreignKey:CaseUID;references:ID"              json:"case,omitempty"`
	PPOMaster *PPOMaster `gorm:"foreignKey:PPOMasterID;references:PPOMasterID" json:"ppo_master,omitempty"`
}

// TableName sets the table name.
func (FamilyPensionClaim) TableName() string { return "family_pension_claims" }
