package dto

// ── record requisitions ──

// CreateRequisitionRequest asks for physical records to be issued to
// the caller's desk. Records are addressed by pensioner and type; the
// service resolves them to concrete record rows.
type CreateRequisitionRequest struct {
	PPONumber   string   `json:"ppo_number"   binding:"required,max=20"`
	RecordTypes []string `json:"record_types" binding:"required,min=1"`
	CaseUID     string   `json:"case_uid"     binding:"omitempty,uuid"`
	Purpose     string   `json:"purpose"      binding:"omitempty,max=500"`
	ApproverID  string   `json:"approver_id"  binding:"omitempty,uuid"`
}

// RejectRequisitionRequest refuses a pending requisition or return.
type RejectRequisitionRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// RequisitionListRequest filters the requisition listing.
type RequisitionListRequest struct {
	PaginationRequest
	Status    string `form:"status"`
	Mine      bool   `form:"mine"`       // requested by the caller
	ToApprove bool   `form:"to_approve"` // waiting on the caller's approval
	CaseUID   string `form:"case_uid"`
}
