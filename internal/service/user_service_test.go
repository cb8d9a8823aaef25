package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/workflow"
)

func newUserFixture(t *testing.T) (*mockRepos, UserService) {
	t.Helper()
	repos := newMockRepos()
	return repos, NewUserService(repos.repo, zap.NewNop())
}

func TestUserService_Create(t *testing.T) {
	repos, svc := newUserFixture(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, &dto.CreateUserRequest{
		Username: "aao1",
		Password: "secret123",
		FullName: "A Rao",
		Role:     string(workflow.RoleAAO),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.RoleLabel != "Assistant Accounts Officer" {
		t.Errorf("RoleLabel = %q", u.RoleLabel)
	}
	if !u.IsActiveHolder {
		t.Error("IsActiveHolder should default to true")
	}

	stored, _ := repos.users.GetByID(ctx, u.UserID)
	if stored.PasswordHash == "secret123" || stored.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	_, svc := newUserFixture(t)
	ctx := context.Background()

	req := &dto.CreateUserRequest{Username: "dh1", Password: "secret123", FullName: "D One", Role: string(workflow.RoleDH)}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	_, svc := newUserFixture(t)

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "x", Password: "secret123", FullName: "X", Role: "SUPERVISOR",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestUserService_Update(t *testing.T) {
	_, svc := newUserFixture(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, &dto.CreateUserRequest{
		Username: "dh1", Password: "secret123", FullName: "D One", Role: string(workflow.RoleDH),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inactive := false
	keeper := true
	got, err := svc.Update(ctx, u.UserID, &dto.UpdateUserRequest{
		IsActiveHolder: &inactive,
		IsRecordKeeper: &keeper,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.IsActiveHolder || !got.IsRecordKeeper {
		t.Errorf("flags = holder:%v keeper:%v", got.IsActiveHolder, got.IsRecordKeeper)
	}
}

func TestUserService_HoldersByRole(t *testing.T) {
	_, svc := newUserFixture(t)
	ctx := context.Background()

	inactive := false
	svc.Create(ctx, &dto.CreateUserRequest{Username: "dh1", Password: "secret123", FullName: "D One", Role: string(workflow.RoleDH)})
	svc.Create(ctx, &dto.CreateUserRequest{Username: "dh2", Password: "secret123", FullName: "D Two", Role: string(workflow.RoleDH), IsActiveHolder: &inactive})
	svc.Create(ctx, &dto.CreateUserRequest{Username: "aao1", Password: "secret123", FullName: "A One", Role: string(workflow.RoleAAO)})

	holders, err := svc.HoldersByRole(ctx, string(workflow.RoleDH))
	if err != nil {
		t.Fatalf("HoldersByRole: %v", err)
	}
	if len(holders) != 1 || holders[0].Username != "dh1" {
		t.Errorf("holders = %v, want only the active DH", holders)
	}

	if _, err := svc.HoldersByRole(ctx, "CLERK"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}
