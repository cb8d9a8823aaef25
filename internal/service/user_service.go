package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/workflow"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidRole   = errors.New("invalid role")
)

// UserService manages user profiles and holder lookups.
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, userID string) (*dto.UserResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
	HoldersByRole(ctx context.Context, role string) ([]dto.HolderOption, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, err := workflow.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	activeHolder := true
	if req.IsActiveHolder != nil {
		activeHolder = *req.IsActiveHolder
	}

	user := &model.UserProfile{
		Username:       req.Username,
		FullName:       req.FullName,
		PasswordHash:   string(hash),
		Role:           string(role),
		Phone:          req.Phone,
		Department:     req.Department,
		IsActiveHolder: activeHolder,
		IsRecordKeeper: req.IsRecordKeeper,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := userResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.IsActiveHolder != nil {
		user.IsActiveHolder = *req.IsActiveHolder
	}
	if req.IsRecordKeeper != nil {
		user.IsRecordKeeper = *req.IsRecordKeeper
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := userResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	req.Normalize()
	users, total, err := s.repo.User.List(ctx, repository.UserFilters{
		Role:          req.Role,
		ActiveHolders: req.ActiveHolders,
		RecordKeepers: req.RecordKeepers,
		Keyword:       req.Keyword,
	}, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return out, total, nil
}

// HoldersByRole lists the active holders eligible to receive a case at
// the given stage. Backs the holder dropdown on the movement form.
func (s *userService) HoldersByRole(ctx context.Context, role string) ([]dto.HolderOption, error) {
	r, err := workflow.ParseRole(role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	users, err := s.repo.User.ListHoldersByRole(ctx, string(r))
	if err != nil {
		return nil, err
	}

	out := make([]dto.HolderOption, 0, len(users))
	for _, u := range users {
		out = append(out, dto.HolderOption{
			UserID:   u.UserID,
			FullName: u.FullName,
			Username: u.Username,
		})
	}
	return out, nil
}
