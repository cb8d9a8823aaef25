package model

// Sequence scopes for human-readable document numbers.
const (
	SeqCase        = "CASE"
	SeqGrievance   = "GRV"
	SeqRequisition = "REQ"
	SeqPPO         = "PPO"
)

// Sequence is one per-period atomic counter. Incrementing happens with
// an upsert inside the creating transaction, so concurrently registered
// documents can never draw the same number.
type Sequence struct {
	Scope  string `gorm:"type:varchar(10);primaryKey" json:"scope"`
	Period string `gorm:"type:varchar(10);primaryKey" json:"period"` // e.g. "2025-01", or "2025" for PPO
	Value  int64  `gorm:"not null;default:0"          json:"value"`
}

// TableName sets the table name.
func (Sequence) TableName() string { return "sequences" }
