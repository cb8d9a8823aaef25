package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/workflow"
)

var (
	ErrConfigApproverRole = errors.New("default approver must be an AAO")
	ErrConfigDHRole       = errors.New("default dealing hand must be a DH")
	ErrConfigNotRoom      = errors.New("configured location is not a record room")
)

// ConfigService reads and writes the office-wide operational defaults.
type ConfigService interface {
	Get(ctx context.Context) (*model.SystemConfig, error)
	Update(ctx context.Context, req *dto.UpdateSystemConfigRequest) (*model.SystemConfig, error)
}

type configService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewConfigService creates a ConfigService instance.
func NewConfigService(repo *repository.Repository, logger *zap.Logger) ConfigService {
	return &configService{repo: repo, logger: logger}
}

func (s *configService) Get(ctx context.Context) (*model.SystemConfig, error) {
	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.SystemConfig{ID: 1}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (s *configService) Update(ctx context.Context, req *dto.UpdateSystemConfigRequest) (*model.SystemConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.DefaultApproverID != nil {
		u, err := s.repo.User.GetByID(ctx, *req.DefaultApproverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if u.Role != string(workflow.RoleAAO) {
			return nil, ErrConfigApproverRole
		}
		cfg.DefaultApproverID = req.DefaultApproverID
	}
	if req.DefaultDealingHandID != nil {
		u, err := s.repo.User.GetByID(ctx, *req.DefaultDealingHandID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if u.Role != string(workflow.RoleDH) {
			return nil, ErrConfigDHRole
		}
		cfg.DefaultDealingHandID = req.DefaultDealingHandID
	}
	if req.RecordRoomLocationID != nil {
		loc, err := s.repo.Location.GetByID(ctx, *req.RecordRoomLocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}
		if loc.LocationType != model.LocationRecordRoom {
			return nil, ErrConfigNotRoom
		}
		cfg.RecordRoomLocationID = req.RecordRoomLocationID
	}

	cfg.DefaultApprover = nil
	cfg.DefaultDealingHand = nil
	cfg.RecordRoomLocation = nil
	if err := s.repo.SystemConfig.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
