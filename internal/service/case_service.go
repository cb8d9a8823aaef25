package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/workflow"
)

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrCaseTypeNotFound   = errors.New("case type not found")
	ErrPPONotFound        = errors.New("ppo number not found")
	ErrForbidden          = errors.New("operation not permitted for this role")
	ErrNotCaseHolder      = errors.New("case is not on your desk")
	ErrCaseCompleted      = errors.New("case is already completed")
	ErrInvalidMovement    = errors.New("movement not allowed from current stage")
	ErrHolderRoleMismatch = errors.New("target holder does not match the required stage")
	ErrNoEligibleHolder   = errors.New("no active holder available for the required stage")
	// ErrRecordTransfer marks a failure while re-homing physical records
	// during a case movement, so callers can tell it apart from the
	// movement itself being invalid.
	ErrRecordTransfer = errors.New("held record transfer failed")
)

// CaseService implements case intake and the stage movement workflow.
type CaseService interface {
	Register(ctx context.Context, actorID string, req *dto.RegisterCaseRequest) (*model.Case, error)
	Get(ctx context.Context, actorID, caseUID string) (*model.Case, []model.CaseMovement, error)
	List(ctx context.Context, actorID string, req *dto.CaseListRequest) ([]model.Case, int64, error)
	Move(ctx context.Context, actorID, caseUID string, req *dto.MoveCaseRequest) (*model.Case, error)
	AvailableHolders(ctx context.Context, actorID, caseUID, action string) ([]dto.HolderOption, error)
	ImportCSV(ctx context.Context, actorID string, r io.Reader) (*dto.ImportCasesResponse, error)
	ReconcileDayCounters(ctx context.Context, now time.Time) (int, error)
}

type caseService struct {
	repo         *repository.Repository
	requisitions RequisitionService
	logger       *zap.Logger
}

// NewCaseService creates a CaseService instance.
func NewCaseService(repo *repository.Repository, requisitions RequisitionService, logger *zap.Logger) CaseService {
	return &caseService{repo: repo, requisitions: requisitions, logger: logger}
}

func (s *caseService) Register(ctx context.Context, actorID string, req *dto.RegisterCaseRequest) (*model.Case, error) {
	actor, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !workflow.CanRegisterCase(workflow.Role(actor.Role)) {
		return nil, ErrForbidden
	}

	caseType, err := s.repo.CaseType.GetByID(ctx, req.CaseTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseTypeNotFound
		}
		return nil, err
	}
	if _, err := workflow.StagesFor(caseType.WorkflowType); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = caseType.Priority
	}

	var ppo *model.PPOMaster
	if req.PPONumber != "" {
		ppo, err = s.repo.PPOMaster.GetByNumber(ctx, req.PPONumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPPONotFound
			}
			return nil, err
		}
	}

	holder, err := s.initialHolder(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &model.Case{
		RegistrationDate: now,
		CaseTypeID:       caseType.CaseTypeID,
		SubCategory:      req.SubCategory,
		CaseTitle:        req.CaseTitle,
		CaseDescription:  req.CaseDescription,
		ApplicantName:    req.ApplicantName,
		Priority:         priority,
		CurrentStatus:    string(workflow.RoleDH),
		CurrentHolderID:  holder.UserID,
		ExpectedDone:     now.AddDate(0, 0, workflow.ExpectedDays(priority)),
		StatusColor:      workflow.StatusColor(workflow.RoleDH, priority),
		CreatedByID:      actor.UserID,
		LastUpdatedByID:  actor.UserID,
		LastUpdateDate:   now,

		PPONumber:           req.PPONumber,
		PensionerName:       req.PensionerName,
		MobileNumber:        req.MobileNumber,
		ModeOfReceipt:       req.ModeOfReceipt,
		DateOfDeath:         req.DateOfDeath,
		ClaimantName:        req.ClaimantName,
		Relationship:        req.Relationship,
		ServiceBookEnclosed: req.ServiceBookEnclosed,
		TypeOfCorrection:    req.TypeOfCorrection,
		FreshOrCompliance:   req.FreshOrCompliance,
		TypeOfEmployee:      req.TypeOfEmployee,
		TypeOfPension:       req.TypeOfPension,
		TypeOfPensioner:     req.TypeOfPensioner,
		DateOfRetirement:    req.DateOfRetirement,
	}
	if ppo != nil {
		c.PPOMasterID = &ppo.PPOMasterID
	}
	if req.RetiringEmployeeID != "" {
		c.RetiringEmployeeID = &req.RetiringEmployeeID
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		seq, err := tx.Sequence.Next(ctx, model.SeqCase, monthPeriod(now))
		if err != nil {
			return err
		}
		c.CaseID = docNumber(model.SeqCase, now, seq)

		if err := tx.Case.Create(ctx, c); err != nil {
			return err
		}

		movement := &model.CaseMovement{
			CaseUID:      c.ID,
			MovementDate: now,
			FromStage:    model.StageNew,
			ToStage:      string(workflow.RoleDH),
			ToHolderID:   holder.UserID,
			Action:       "Case registered",
			Comments:     fmt.Sprintf("Registered as %s", c.CaseID),
			UpdatedByID:  actor.UserID,
		}
		if err := tx.CaseMovement.Create(ctx, movement); err != nil {
			return err
		}

		// A Death Intimation opens the family pension paper trail.
		if req.DateOfDeath != nil {
			claim := &model.FamilyPensionClaim{
				CaseUID:     c.ID,
				ClaimStatus: model.ClaimPending,
				PPOMasterID: c.PPOMasterID,
				CreatedByID: &actor.UserID,
			}
			if err := tx.FamilyClaim.Create(ctx, claim); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.fireTriggers(ctx, c, actor.UserID)

	s.logger.Info("case registered",
		zap.String("case_id", c.CaseID),
		zap.String("holder", holder.Username))
	return c, nil
}

// initialHolder picks the Dealing Hand a fresh case lands with: the
// registrar when they are a DH themselves, otherwise the configured
// default, otherwise any active DH.
func (s *caseService) initialHolder(ctx context.Context, actor *model.UserProfile) (*model.UserProfile, error) {
	if actor.Role == string(workflow.RoleDH) {
		return actor, nil
	}

	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err == nil && cfg.DefaultDealingHandID != nil {
		if u, err := s.repo.User.GetByID(ctx, *cfg.DefaultDealingHandID); err == nil && u.IsActiveHolder {
			return u, nil
		}
	}

	u, err := s.repo.User.FirstActiveByRole(ctx, string(workflow.RoleDH))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEligibleHolder
		}
		return nil, err
	}
	return u, nil
}

// fireTriggers raises auto-requisitions configured for the case type.
// Trigger failures are logged, never propagated: the case is already
// committed.
func (s *caseService) fireTriggers(ctx context.Context, c *model.Case, actorID string) {
	if c.PPOMasterID == nil {
		return
	}
	triggers, err := s.repo.Trigger.ListActiveByEvent(ctx, model.TriggerOnCaseCreation, c.CaseTypeID)
	if err != nil {
		s.logger.Warn("list requisition triggers failed", zap.Error(err))
		return
	}
	for _, t := range triggers {
		types := splitCSV(t.RecordTypes)
		if len(types) == 0 {
			continue
		}
		if err := s.requisitions.CreateFromTrigger(ctx, c, types, actorID); err != nil {
			s.logger.Warn("auto requisition failed",
				zap.String("case_id", c.CaseID),
				zap.String("trigger_id", t.TriggerID),
				zap.Error(err))
		}
	}
}

func (s *caseService) Get(ctx context.Context, actorID, caseUID string) (*model.Case, []model.CaseMovement, error) {
	c, err := s.repo.Case.GetByID(ctx, caseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCaseNotFound
		}
		return nil, nil, err
	}

	actor, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	holderRole := workflow.Role(actor.Role)
	if c.CurrentHolder != nil {
		holderRole = workflow.Role(c.CurrentHolder.Role)
	}
	if !workflow.CanView(workflow.Role(actor.Role), holderRole) {
		return nil, nil, ErrForbidden
	}

	movements, err := s.repo.CaseMovement.ListByCase(ctx, c.ID)
	if err != nil {
		return nil, nil, err
	}
	return c, movements, nil
}

func (s *caseService) List(ctx context.Context, actorID string, req *dto.CaseListRequest) ([]model.Case, int64, error) {
	actor, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}
	req.Normalize()

	filters := repository.CaseFilters{
		CaseTypeID: req.CaseTypeID,
		Priority:   req.Priority,
		Status:     req.Status,
		Search:     req.Search,
	}
	if req.Mine {
		filters.HolderID = actor.UserID
	} else if req.HolderID != "" {
		filters.HolderID = req.HolderID
	} else if actor.Role != string(workflow.RoleAdmin) {
		// Hierarchy scoping: a viewer sees work at their own rank and below.
		visible := workflow.VisibleRoles(workflow.Role(actor.Role))
		roles := make([]string, len(visible))
		for i, r := range visible {
			roles[i] = string(r)
		}
		filters.HolderRoles = roles
	}

	return s.repo.Case.List(ctx, filters, req.Offset(), req.PageSize)
}

func (s *caseService) Move(ctx context.Context, actorID, caseUID string, req *dto.MoveCaseRequest) (*model.Case, error) {
	c, err := s.repo.Case.GetByID(ctx, caseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	actor, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.UserID != c.CurrentHolderID && actor.Role != string(workflow.RoleAdmin) {
		return nil, ErrNotCaseHolder
	}

	holder := c.CurrentHolder
	if holder == nil {
		holder, err = s.repo.User.GetByID(ctx, c.CurrentHolderID)
		if err != nil {
			return nil, err
		}
	}

	plan, err := s.planMovement(ctx, c, holder, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fromStage := c.CurrentStatus
	fromHolderID := c.CurrentHolderID
	daysPrev := daysBetween(c.LastUpdateDate, now)

	movement := &model.CaseMovement{
		CaseUID:        c.ID,
		MovementDate:   now,
		FromStage:      fromStage,
		ToStage:        plan.toStage,
		FromHolderID:   &fromHolderID,
		ToHolderID:     plan.target.UserID,
		Action:         plan.action,
		Comments:       req.Comments,
		DaysInPrevious: daysPrev,
		UpdatedByID:    actor.UserID,
	}

	c.CurrentStatus = plan.toStage
	c.CurrentHolderID = plan.target.UserID
	c.DaysInCurrent = 0
	c.TotalDaysPending += daysPrev
	c.LastUpdatedByID = actor.UserID
	c.LastUpdateDate = now
	c.IsCompleted = plan.completed
	if plan.completed {
		done := now
		c.ActualDone = &done
		c.CurrentStatus = model.StageCompleted
	} else {
		c.ActualDone = nil
	}
	if plan.toStage == model.StageCompleted {
		c.StatusColor = workflow.ColorBlue
	} else {
		c.StatusColor = workflow.StatusColor(workflow.Role(plan.target.Role), c.Priority)
	}
	c.CurrentHolder = nil

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Case.Update(ctx, c); err != nil {
			return err
		}
		if err := tx.CaseMovement.Create(ctx, movement); err != nil {
			return err
		}
		if plan.target.UserID != fromHolderID {
			if err := s.transferHeldRecords(ctx, tx, c, fromHolderID, plan.target); err != nil {
				return fmt.Errorf("%w: %v", ErrRecordTransfer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("case moved",
		zap.String("case_id", c.CaseID),
		zap.String("action", req.Action),
		zap.String("from", fromStage),
		zap.String("to", plan.toStage))
	return c, nil
}

// movementPlan is the resolved outcome of one movement request.
type movementPlan struct {
	toStage   string
	target    *model.UserProfile
	action    string
	completed bool
}

// planMovement validates the requested action against the workflow
// tables and resolves the receiving holder. Nothing is written here;
// validation failures must leave no trace.
func (s *caseService) planMovement(ctx context.Context, c *model.Case, holder *model.UserProfile, req *dto.MoveCaseRequest) (*movementPlan, error) {
	caseType := c.CaseType
	if caseType == nil {
		var err error
		caseType, err = s.repo.CaseType.GetByID(ctx, c.CaseTypeID)
		if err != nil {
			return nil, err
		}
	}
	stages, err := workflow.StagesFor(caseType.WorkflowType)
	if err != nil {
		return nil, err
	}
	curRole := workflow.Role(holder.Role)

	switch req.Action {
	case workflow.MovementForward:
		if c.IsCompleted {
			return nil, ErrCaseCompleted
		}
		idx, err := workflow.StageIndex(caseType.WorkflowType, curRole)
		if err != nil {
			return nil, err
		}
		if idx >= len(stages)-1 {
			// Already at the final stage.
			return nil, ErrInvalidMovement
		}
		next := stages[idx+1]
		target, err := s.resolveTarget(ctx, req.TargetHolderID, next)
		if err != nil {
			return nil, err
		}
		return &movementPlan{
			toStage: string(next),
			target:  target,
			action:  fmt.Sprintf("Forwarded to %s", next.Label()),
			// Landing on the final stage closes the case.
			completed: idx+1 == len(stages)-1,
		}, nil

	case workflow.MovementBackward:
		idx, err := workflow.StageIndex(caseType.WorkflowType, curRole)
		if err != nil {
			return nil, err
		}
		if idx == 0 {
			return nil, ErrInvalidMovement
		}
		prev := stages[idx-1]
		target, err := s.resolveTarget(ctx, req.TargetHolderID, prev)
		if err != nil {
			return nil, err
		}
		action := fmt.Sprintf("Returned to %s", prev.Label())
		if c.IsCompleted {
			// Moving a completed case backward reopens it.
			action = fmt.Sprintf("Reopened and returned to %s", prev.Label())
		}
		return &movementPlan{
			toStage: string(prev),
			target:  target,
			action:  action,
		}, nil

	case workflow.MovementReassign:
		if c.IsCompleted {
			return nil, ErrCaseCompleted
		}
		if req.TargetHolderID == "" || req.TargetHolderID == holder.UserID {
			return nil, ErrInvalidMovement
		}
		target, err := s.resolveTarget(ctx, req.TargetHolderID, curRole)
		if err != nil {
			return nil, err
		}
		return &movementPlan{
			toStage: string(curRole),
			target:  target,
			action:  fmt.Sprintf("Reassigned within %s", curRole.Label()),
		}, nil

	case workflow.MovementComplete:
		if c.IsCompleted {
			return nil, ErrCaseCompleted
		}
		idx, err := workflow.StageIndex(caseType.WorkflowType, curRole)
		if err != nil {
			return nil, err
		}
		// A case must clear at least the first desk before closing.
		if idx < 1 {
			return nil, ErrInvalidMovement
		}
		return &movementPlan{
			toStage:   model.StageCompleted,
			target:    holder,
			action:    "Case completed",
			completed: true,
		}, nil
	}
	return nil, ErrInvalidMovement
}

// resolveTarget picks the receiving holder for a stage: the explicitly
// requested user when given, otherwise any active holder of that rank.
func (s *caseService) resolveTarget(ctx context.Context, targetID string, stage workflow.Role) (*model.UserProfile, error) {
	if targetID != "" {
		u, err := s.repo.User.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if u.Role != string(stage) {
			return nil, ErrHolderRoleMismatch
		}
		if !u.IsActiveHolder {
			return nil, ErrNoEligibleHolder
		}
		return u, nil
	}

	u, err := s.repo.User.FirstActiveByRole(ctx, string(stage))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEligibleHolder
		}
		return nil, err
	}
	return u, nil
}

// transferHeldRecords re-homes the physical records a departing holder
// drew for this case onto the receiving holder's desk, keeping custody
// in step with the case file.
func (s *caseService) transferHeldRecords(ctx context.Context, tx *repository.Repository, c *model.Case, fromHolderID string, to *model.UserProfile) error {
	if c.PPOMasterID == nil {
		return nil
	}

	fromDesk, err := tx.Location.GetDeskByCustodian(ctx, fromHolderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // never held anything
		}
		return err
	}

	reqs, err := tx.Requisition.ListOpenByCase(ctx, c.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	var toDesk *model.Location
	for _, r := range reqs {
		if r.Status != model.ReqInUse {
			continue
		}
		var moveIDs []string
		var movements []model.RecordMovement
		for _, rec := range r.Records {
			if rec.Status != model.RecordInUse || rec.CurrentLocationID != fromDesk.LocationID {
				continue
			}
			if toDesk == nil {
				toDesk, err = tx.Location.GetOrCreateDesk(ctx, to.UserID, fmt.Sprintf("Desk of %s", to.FullName))
				if err != nil {
					return err
				}
			}
			from := rec.CurrentLocationID
			reqID := r.RequisitionID
			moveIDs = append(moveIDs, rec.RecordID)
			movements = append(movements, model.RecordMovement{
				RecordID:         rec.RecordID,
				FromLocationID:   &from,
				ToLocationID:     toDesk.LocationID,
				RequisitionID:    &reqID,
				AcknowledgedByID: to.UserID,
				MovedAt:          now,
				Remarks:          fmt.Sprintf("Transferred with case %s", c.CaseID),
			})
		}
		if len(moveIDs) == 0 {
			continue
		}
		if err := tx.Record.UpdateStatusAndLocation(ctx, moveIDs, model.RecordInUse, toDesk.LocationID); err != nil {
			return err
		}
		if err := tx.RecordMovement.CreateBatch(ctx, movements); err != nil {
			return err
		}
	}
	return nil
}

func (s *caseService) AvailableHolders(ctx context.Context, actorID, caseUID, action string) ([]dto.HolderOption, error) {
	c, err := s.repo.Case.GetByID(ctx, caseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	holder := c.CurrentHolder
	if holder == nil {
		holder, err = s.repo.User.GetByID(ctx, c.CurrentHolderID)
		if err != nil {
			return nil, err
		}
	}

	caseType := c.CaseType
	if caseType == nil {
		caseType, err = s.repo.CaseType.GetByID(ctx, c.CaseTypeID)
		if err != nil {
			return nil, err
		}
	}
	stages, err := workflow.StagesFor(caseType.WorkflowType)
	if err != nil {
		return nil, err
	}
	curRole := workflow.Role(holder.Role)

	var stage workflow.Role
	switch action {
	case workflow.MovementForward:
		idx, err := workflow.StageIndex(caseType.WorkflowType, curRole)
		if err != nil {
			return nil, err
		}
		if c.IsCompleted || idx == len(stages)-1 {
			return []dto.HolderOption{}, nil
		}
		stage = stages[idx+1]
	case workflow.MovementBackward:
		idx, err := workflow.StageIndex(caseType.WorkflowType, curRole)
		if err != nil {
			return nil, err
		}
		if idx == 0 {
			return nil, ErrInvalidMovement
		}
		stage = stages[idx-1]
	case workflow.MovementReassign:
		stage = curRole
	default:
		return nil, ErrInvalidMovement
	}

	users, err := s.repo.User.ListHoldersByRole(ctx, string(stage))
	if err != nil {
		return nil, err
	}
	out := make([]dto.HolderOption, 0, len(users))
	for _, u := range users {
		if action == workflow.MovementReassign && u.UserID == holder.UserID {
			continue
		}
		out = append(out, dto.HolderOption{UserID: u.UserID, FullName: u.FullName, Username: u.Username})
	}
	return out, nil
}

// csvHeader is the column layout accepted by bulk intake.
var csvHeader = []string{"case_type", "case_title", "applicant_name", "priority", "ppo_number", "description"}

// ImportCSV registers one case per row through the normal intake path,
// so imported cases get the same numbering, movements and triggers as
// hand-registered ones.
func (s *caseService) ImportCSV(ctx context.Context, actorID string, r io.Reader) (*dto.ImportCasesResponse, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range csvHeader[:3] {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", want)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	resp := &dto.ImportCasesResponse{}
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		typeName := field(row, "case_type")
		caseType, err := s.repo.CaseType.GetByName(ctx, typeName)
		if err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("line %d: unknown case type %q", line, typeName))
			continue
		}

		req := &dto.RegisterCaseRequest{
			CaseTypeID:      caseType.CaseTypeID,
			CaseTitle:       field(row, "case_title"),
			ApplicantName:   field(row, "applicant_name"),
			Priority:        field(row, "priority"),
			PPONumber:       field(row, "ppo_number"),
			CaseDescription: field(row, "description"),
		}
		if req.CaseTitle == "" || req.ApplicantName == "" {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("line %d: title and applicant are required", line))
			continue
		}

		if _, err := s.Register(ctx, actorID, req); err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		resp.Imported++
	}
	return resp, nil
}

// ReconcileDayCounters recomputes the aging counters of every pending
// case. Writes touch only the two counters so a movement committing in
// parallel keeps its own fields.
func (s *caseService) ReconcileDayCounters(ctx context.Context, now time.Time) (int, error) {
	cases, err := s.repo.Case.ListPending(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range cases {
		c := &cases[i]
		daysInCurrent := daysBetween(c.LastUpdateDate, now)
		if daysInCurrent == c.DaysInCurrent {
			continue
		}
		// Movements already folded earlier stages into the total, so only
		// the growth since the last run is added.
		totalPending := c.TotalDaysPending + (daysInCurrent - c.DaysInCurrent)
		if err := s.repo.Case.UpdateDayCounters(ctx, c.ID, daysInCurrent, totalPending); err != nil {
			s.logger.Warn("update day counters failed",
				zap.String("case_id", c.CaseID), zap.Error(err))
			continue
		}
		updated++
	}
	return updated, nil
}

func daysBetween(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
