package dto

// ── physical records ──

// CreateRecordRequest registers a physical record in the inventory.
type CreateRecordRequest struct {
	PPONumber   string `json:"ppo_number"  binding:"required,max=20"`
	RecordType  string `json:"record_type" binding:"required,oneof=SERVICE_BOOK PENSION_FILE OTHER"`
	Description string `json:"description" binding:"omitempty"`
	LocationID  string `json:"location_id" binding:"omitempty,uuid"` // defaults to the record room
}

// RecordListRequest filters the record inventory listing.
type RecordListRequest struct {
	PaginationRequest
	RecordType string `form:"record_type"`
	Status     string `form:"status"`
	LocationID string `form:"location_id"`
	Search     string `form:"search"`
}

// MarkRecordRequest flags a record missing or archived.
type MarkRecordRequest struct {
	Status  string `json:"status"  binding:"required,oneof=MISSING ARCHIVED AVAILABLE"`
	Remarks string `json:"remarks" binding:"omitempty,max=500"`
}

// CreateLocationRequest registers a record room or office location.
type CreateLocationRequest struct {
	Name         string `json:"name"          binding:"required,min=2,max=200"`
	LocationType string `json:"location_type" binding:"required,oneof=RECORD_ROOM OFFICE"`
}
