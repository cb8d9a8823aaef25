package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/workflow"
)

var (
	ErrRequisitionNotFound = errors.New("requisition not found")
	ErrRequisitionState    = errors.New("requisition is not in the required state")
	ErrNotApprover         = errors.New("only the designated approving AAO may decide this requisition")
	ErrNotRequester        = errors.New("only the requesting user may act on this requisition")
	ErrNotRecordKeeper     = errors.New("only a record keeper may execute handovers")
	ErrNoRecordsAvailable  = errors.New("no requested records are available")
	ErrNoApprover          = errors.New("no approving AAO available")
	ErrNoRecordRoom        = errors.New("no record room location configured")
)

// RequisitionService runs the physical record requisition workflow:
// request, approval, handover, and the mirrored return leg.
type RequisitionService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateRequisitionRequest) (*model.RecordRequisition, error)
	CreateFromTrigger(ctx context.Context, c *model.Case, recordTypes []string, actorID string) error
	Get(ctx context.Context, id string) (*model.RecordRequisition, error)
	List(ctx context.Context, actorID string, req *dto.RequisitionListRequest) ([]model.RecordRequisition, int64, error)
	Approve(ctx context.Context, actorID, id string) (*model.RecordRequisition, error)
	Reject(ctx context.Context, actorID, id, reason string) (*model.RecordRequisition, error)
	Handover(ctx context.Context, actorID, id string) (*model.RecordRequisition, error)
	RequestReturn(ctx context.Context, actorID, id string) (*model.RecordRequisition, error)
	ApproveReturn(ctx context.Context, actorID, id string) (*model.RecordRequisition, error)
	RejectReturn(ctx context.Context, actorID, id, reason string) (*model.RecordRequisition, error)
	AcknowledgeReturn(ctx context.Context, actorID, id string) (*model.RecordRequisition, error)
}

type requisitionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRequisitionService creates a RequisitionService instance.
func NewRequisitionService(repo *repository.Repository, logger *zap.Logger) RequisitionService {
	return &requisitionService{repo: repo, logger: logger}
}

func (s *requisitionService) Create(ctx context.Context, actorID string, req *dto.CreateRequisitionRequest) (*model.RecordRequisition, error) {
	actor, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !workflow.CanRequestRecords(workflow.Role(actor.Role)) && actor.Role != string(workflow.RoleAdmin) {
		return nil, ErrForbidden
	}

	ppo, err := s.repo.PPOMaster.GetByNumber(ctx, req.PPONumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPPONotFound
		}
		return nil, err
	}

	records, err := s.repo.Record.ListAvailableByOwnerAndTypes(ctx, ppo.PPOMasterID, req.RecordTypes)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecordsAvailable
	}

	approver, err := s.resolveApprover(ctx, req.ApproverID)
	if err != nil {
		return nil, err
	}

	var caseUID *string
	if req.CaseUID != "" {
		caseUID = &req.CaseUID
	}
	return s.create(ctx, actor.UserID, approver.UserID, caseUID, req.Purpose, records)
}

// CreateFromTrigger raises an automatic requisition on case
// registration using the configured default approver. Record types
// with nothing available are silently skipped; an auto-requisition is
// a convenience, not a guarantee.
func (s *requisitionService) CreateFromTrigger(ctx context.Context, c *model.Case, recordTypes []string, actorID string) error {
	if c.PPOMasterID == nil {
		return nil
	}
	records, err := s.repo.Record.ListAvailableByOwnerAndTypes(ctx, *c.PPOMasterID, recordTypes)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	approver, err := s.resolveApprover(ctx, "")
	if err != nil {
		return err
	}

	caseUID := c.ID
	purpose := fmt.Sprintf("Auto-requisitioned for case %s", c.CaseID)
	_, err = s.create(ctx, c.CurrentHolderID, approver.UserID, &caseUID, purpose, records)
	return err
}

// create reserves the records and writes the requisition atomically.
// Reservation at creation (not approval) stops two Dealing Hands from
// racing for the same service book.
func (s *requisitionService) create(ctx context.Context, requesterID, approverID string, caseUID *string, purpose string, records []model.Record) (*model.RecordRequisition, error) {
	now := time.Now()
	r := &model.RecordRequisition{
		CaseUID:        caseUID,
		RequestedByID:  requesterID,
		ApprovingAAOID: approverID,
		Status:         model.ReqPendingApproval,
		Purpose:        purpose,
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.RecordID
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		seq, err := tx.Sequence.Next(ctx, model.SeqRequisition, monthPeriod(now))
		if err != nil {
			return err
		}
		r.RequisitionNo = docNumber(model.SeqRequisition, now, seq)

		if err := tx.Requisition.Create(ctx, r, ids); err != nil {
			return err
		}
		return tx.Record.UpdateStatus(ctx, ids, model.RecordRequisitioned)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("requisition created",
		zap.String("requisition_no", r.RequisitionNo),
		zap.Int("records", len(ids)))
	return r, nil
}

// resolveApprover picks the approving AAO: the explicitly named user,
// the configured default, or any active AAO.
func (s *requisitionService) resolveApprover(ctx context.Context, approverID string) (*model.UserProfile, error) {
	if approverID != "" {
		u, err := s.repo.User.GetByID(ctx, approverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if !workflow.CanApproveRequisition(workflow.Role(u.Role)) {
			return nil, ErrNoApprover
		}
		return u, nil
	}

	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err == nil && cfg.DefaultApproverID != nil {
		if u, err := s.repo.User.GetByID(ctx, *cfg.DefaultApproverID); err == nil {
			return u, nil
		}
	}

	u, err := s.repo.User.FirstActiveByRole(ctx, string(workflow.RoleAAO))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoApprover
		}
		return nil, err
	}
	return u, nil
}

func (s *requisitionService) Get(ctx context.Context, id string) (*model.RecordRequisition, error) {
	r, err := s.repo.Requisition.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequisitionNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *requisitionService) List(ctx context.Context, actorID string, req *dto.RequisitionListRequest) ([]model.RecordRequisition, int64, error) {
	req.Normalize()
	filters := repository.RequisitionFilters{
		Status:  req.Status,
		CaseUID: req.CaseUID,
	}
	if req.Mine {
		filters.RequestedByID = actorID
	}
	if req.ToApprove {
		filters.ApproverID = actorID
		if filters.Status == "" {
			filters.Status = model.ReqPendingApproval
		}
	}
	return s.repo.Requisition.List(ctx, filters, req.Offset(), req.PageSize)
}

func (s *requisitionService) Approve(ctx context.Context, actorID, id string) (*model.RecordRequisition, error) {
	r, err := s.decided(ctx, actorID, id, model.ReqPendingApproval)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	r.Status = model.ReqApproved
	r.ApprovedAt = &now
	if err := s.repo.Requisition.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requisitionService) Reject(ctx context.Context, actorID, id, reason string) (*model.RecordRequisition, error) {
	r, err := s.decided(ctx, actorID, id, model.ReqPendingApproval)
	if err != nil {
		return nil, err
	}

	ids := recordIDs(r.Records)
	r.Status = model.ReqRejected
	r.RejectReason = reason

	// The reservation made at creation is released on rejection.
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Requisition.Update(ctx, r); err != nil {
			return err
		}
		return tx.Record.UpdateStatus(ctx, ids, model.RecordAvailable)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Handover moves approved records from their resting location to the
// requester's desk. Only a record keeper can attest the physical act.
func (s *requisitionService) Handover(ctx context.Context, actorID, id string) (*model.RecordRequisition, error) {
	keeper, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !keeper.IsRecordKeeper {
		return nil, ErrNotRecordKeeper
	}

	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.ReqApproved {
		return nil, ErrRequisitionState
	}

	now := time.Now()
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		desk, err := tx.Location.GetOrCreateDesk(ctx, r.RequestedByID, deskLabel(r.RequestedBy))
		if err != nil {
			return err
		}

		var movements []model.RecordMovement
		ids := make([]string, 0, len(r.Records))
		for _, rec := range r.Records {
			from := rec.CurrentLocationID
			reqID := r.RequisitionID
			ids = append(ids, rec.RecordID)
			movements = append(movements, model.RecordMovement{
				RecordID:         rec.RecordID,
				FromLocationID:   &from,
				ToLocationID:     desk.LocationID,
				RequisitionID:    &reqID,
				AcknowledgedByID: keeper.UserID,
				MovedAt:          now,
				Remarks:          fmt.Sprintf("Handed over under %s", r.RequisitionNo),
			})
		}
		if err := tx.Record.UpdateStatusAndLocation(ctx, ids, model.RecordInUse, desk.LocationID); err != nil {
			return err
		}
		if err := tx.RecordMovement.CreateBatch(ctx, movements); err != nil {
			return err
		}

		r.Status = model.ReqInUse
		r.HandedOverAt = &now
		return tx.Requisition.Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requisitionService) RequestReturn(ctx context.Context, actorID, id string) (*model.RecordRequisition, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.RequestedByID != actorID {
		return nil, ErrNotRequester
	}
	if r.Status != model.ReqInUse && r.Status != model.ReqReturnRejected {
		return nil, ErrRequisitionState
	}
	r.Status = model.ReqReturnRequested
	if err := s.repo.Requisition.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requisitionService) ApproveReturn(ctx context.Context, actorID, id string) (*model.RecordRequisition, error) {
	r, err := s.decided(ctx, actorID, id, model.ReqReturnRequested)
	if err != nil {
		return nil, err
	}
	r.Status = model.ReqReturnApproved
	if err := s.repo.Requisition.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requisitionService) RejectReturn(ctx context.Context, actorID, id, reason string) (*model.RecordRequisition, error) {
	r, err := s.decided(ctx, actorID, id, model.ReqReturnRequested)
	if err != nil {
		return nil, err
	}
	r.Status = model.ReqReturnRejected
	r.RejectReason = reason
	if err := s.repo.Requisition.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// AcknowledgeReturn closes the loop: a record keeper confirms the
// records are physically back in the record room.
func (s *requisitionService) AcknowledgeReturn(ctx context.Context, actorID, id string) (*model.RecordRequisition, error) {
	keeper, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !keeper.IsRecordKeeper {
		return nil, ErrNotRecordKeeper
	}

	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.ReqReturnApproved {
		return nil, ErrRequisitionState
	}

	room, err := s.recordRoom(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var movements []model.RecordMovement
		ids := make([]string, 0, len(r.Records))
		for _, rec := range r.Records {
			from := rec.CurrentLocationID
			reqID := r.RequisitionID
			ids = append(ids, rec.RecordID)
			movements = append(movements, model.RecordMovement{
				RecordID:         rec.RecordID,
				FromLocationID:   &from,
				ToLocationID:     room.LocationID,
				RequisitionID:    &reqID,
				AcknowledgedByID: keeper.UserID,
				MovedAt:          now,
				Remarks:          fmt.Sprintf("Returned under %s", r.RequisitionNo),
			})
		}
		if err := tx.Record.UpdateStatusAndLocation(ctx, ids, model.RecordAvailable, room.LocationID); err != nil {
			return err
		}
		if err := tx.RecordMovement.CreateBatch(ctx, movements); err != nil {
			return err
		}

		r.Status = model.ReqReturned
		r.ReturnedAt = &now
		return tx.Requisition.Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// decided loads a requisition and checks the caller is its designated
// approving AAO and the status matches.
func (s *requisitionService) decided(ctx context.Context, actorID, id, wantStatus string) (*model.RecordRequisition, error) {
	actor, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !workflow.CanApproveRequisition(workflow.Role(actor.Role)) {
		return nil, ErrForbidden
	}

	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.ApprovingAAOID != actor.UserID {
		return nil, ErrNotApprover
	}
	if r.Status != wantStatus {
		return nil, ErrRequisitionState
	}
	return r, nil
}

// recordRoom resolves the canonical return destination.
func (s *requisitionService) recordRoom(ctx context.Context) (*model.Location, error) {
	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err == nil && cfg.RecordRoomLocationID != nil {
		if loc, err := s.repo.Location.GetByID(ctx, *cfg.RecordRoomLocationID); err == nil {
			return loc, nil
		}
	}

	rooms, err := s.repo.Location.List(ctx, model.LocationRecordRoom)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, ErrNoRecordRoom
	}
	return &rooms[0], nil
}

func recordIDs(records []model.Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.RecordID
	}
	return ids
}

func deskLabel(u *model.UserProfile) string {
	if u != nil {
		return fmt.Sprintf("Desk of %s", u.FullName)
	}
	return "User desk"
}
