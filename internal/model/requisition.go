package model

import "time"

// Requisition statuses, in workflow order. The workflow is strictly
// forward: no status is ever skipped or revisited.
const (
	ReqPendingApproval = "PENDING_APPROVAL"
	ReqApproved        = "APPROVED"
	ReqRejected        = "REJECTED"
	ReqInUse           = "IN_USE"
	ReqReturnRequested = "RETURN_REQUESTED"
	ReqReturnApproved  = "RETURN_APPROVED"
	ReqReturnRejected  = "RETURN_REJECTED"
	ReqReturned        = "RETURNED"
)

// RequisitionTerminal reports whether a status closes the requisition.
func RequisitionTerminal(status string) bool {
	return status == ReqRejected || status == ReqReturned
}

// RecordRequisition is the unit of work for moving physical records
// between locations: requested by a Dealing Hand, approved by one
// designated AAO, handed over and returned by a record keeper.
type RecordRequisition struct {
	RequisitionID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"requisition_id"`
	RequisitionNo   string     `gorm:"type:varchar(50);not null;uniqueIndex"          json:"requisition_no"` // REQ-YYYY-MM-NNNN
	CaseUID         *string    `gorm:"column:case_uid;type:uuid"                      json:"case_uid,omitempty"`
	RequestedByID   string     `gorm:"type:uuid;not null"                             json:"requested_by_id"`
	ApprovingAAOID  string     `gorm:"column:approving_aao_id;type:uuid;not null"     json:"approving_aao_id"`
	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING_APPROVAL'" json:"status"`
	IsReturnRequest bool       `gorm:"not null;default:false"                         json:"is_return_request"`
	Purpose         string     `gorm:"type:text"                                      json:"purpose,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	HandedOverAt    *time.Time `json:"handed_over_at,omitempty"`
	ReturnedAt      *time.Time `json:"returned_at,omitempty"`
	RejectReason    string     `gorm:"type:varchar(500)"                              json:"reject_reason,omitempty"`
	BaseModel

	RequestedBy  *UserProfile `gorm:"foreignKey:RequestedByID;references:UserID"  json:"requested_by,omitempty"`
	ApprovingAAO *UserProfile `gorm:"foreignKey:ApprovingAAOID;references:UserID" json:"approving_aao,omitempty"`
	Case         *Case        `gorm:"foreignKey:CaseUID;references:ID"            json:"case,omitempty"`
	Records      []Record     `gorm:"many2many:requisition_records;foreignKey:RequisitionID;joinForeignKey:RequisitionID;References:RecordID;joinReferences:RecordID" json:"records,omitempty"`
}

// TableName sets the table name.
func (RecordRequisition) TableName() string { return "record_requisitions" }
