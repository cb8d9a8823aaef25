package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrRecordExists     = errors.New("a record of this type already exists for the pensioner")
	ErrLocationNotFound = errors.New("location not found")
	ErrRecordCheckedOut = errors.New("record is requisitioned or in use")
)

// RecordService manages the physical record inventory and locations.
type RecordService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateRecordRequest) (*model.Record, error)
	Get(ctx context.Context, id string) (*model.Record, []model.RecordMovement, error)
	List(ctx context.Context, req *dto.RecordListRequest) ([]model.Record, int64, error)
	Mark(ctx context.Context, actorID, id string, req *dto.MarkRecordRequest) (*model.Record, error)
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*model.Location, error)
	ListLocations(ctx context.Context, locationType string) ([]model.Location, error)
}

type recordService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecordService creates a RecordService instance.
func NewRecordService(repo *repository.Repository, logger *zap.Logger) RecordService {
	return &recordService{repo: repo, logger: logger}
}

func (s *recordService) Create(ctx context.Context, actorID string, req *dto.CreateRecordRequest) (*model.Record, error) {
	ppo, err := s.repo.PPOMaster.GetByNumber(ctx, req.PPONumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPPONotFound
		}
		return nil, err
	}

	// One record per (pensioner, type).
	if _, err := s.repo.Record.GetByOwnerAndType(ctx, ppo.PPOMasterID, req.RecordType); err == nil {
		return nil, ErrRecordExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var loc *model.Location
	if req.LocationID != "" {
		loc, err = s.repo.Location.GetByID(ctx, req.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}
	} else {
		rooms, err := s.repo.Location.List(ctx, model.LocationRecordRoom)
		if err != nil {
			return nil, err
		}
		if len(rooms) == 0 {
			return nil, ErrNoRecordRoom
		}
		loc = &rooms[0]
	}

	rec := &model.Record{
		RecordType:        req.RecordType,
		PPOMasterID:       ppo.PPOMasterID,
		Description:       req.Description,
		Status:            model.RecordAvailable,
		CurrentLocationID: loc.LocationID,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Record.Create(ctx, rec); err != nil {
			return err
		}
		// The intake move anchors the custody trail.
		return tx.RecordMovement.Create(ctx, &model.RecordMovement{
			RecordID:         rec.RecordID,
			ToLocationID:     loc.LocationID,
			AcknowledgedByID: actorID,
			MovedAt:          time.Now(),
			Remarks:          "Record taken on inventory",
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Get(ctx context.Context, id string) (*model.Record, []model.RecordMovement, error) {
	rec, err := s.repo.Record.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRecordNotFound
		}
		return nil, nil, err
	}
	movements, err := s.repo.RecordMovement.ListByRecord(ctx, rec.RecordID)
	if err != nil {
		return nil, nil, err
	}
	return rec, movements, nil
}

func (s *recordService) List(ctx context.Context, req *dto.RecordListRequest) ([]model.Record, int64, error) {
	req.Normalize()
	return s.repo.Record.List(ctx, repository.RecordFilters{
		RecordType: req.RecordType,
		Status:     req.Status,
		LocationID: req.LocationID,
		Search:     req.Search,
	}, req.Offset(), req.PageSize)
}

// Mark flags a record MISSING, ARCHIVED or back to AVAILABLE outside
// the requisition flow. Checked-out records must go through the return
// leg instead.
func (s *recordService) Mark(ctx context.Context, actorID, id string, req *dto.MarkRecordRequest) (*model.Record, error) {
	rec, err := s.repo.Record.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	if rec.Status == model.RecordRequisitioned || rec.Status == model.RecordInUse {
		return nil, ErrRecordCheckedOut
	}

	rec.Status = req.Status
	rec.PPOMaster = nil
	rec.CurrentLocation = nil
	if err := s.repo.Record.Update(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info("record status changed",
		zap.String("record_id", rec.RecordID),
		zap.String("status", req.Status),
		zap.String("by", actorID))
	return rec, nil
}

func (s *recordService) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*model.Location, error) {
	loc := &model.Location{
		Name:         req.Name,
		LocationType: req.LocationType,
		IsActive:     true,
	}
	if err := s.repo.Location.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *recordService) ListLocations(ctx context.Context, locationType string) ([]model.Location, error) {
	return s.repo.Location.List(ctx, locationType)
}
