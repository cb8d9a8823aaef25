package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/workflow"
)

func TestCaseTypeService_Create_Defaults(t *testing.T) {
	repos := newMockRepos()
	svc := NewCaseTypeService(repos.repo, zap.NewNop())

	ct, err := svc.Create(context.Background(), &dto.CreateCaseTypeRequest{
		Name:          "Life Certificate",
		SubCategories: []string{"Annual", "Digital"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ct.WorkflowType != workflow.TypeA {
		t.Errorf("workflow = %s, want default Type_A", ct.WorkflowType)
	}
	if ct.Priority != workflow.PriorityMedium {
		t.Errorf("priority = %s, want default Medium", ct.Priority)
	}
	if ct.ExpectedDays != 30 {
		t.Errorf("expected days = %d, want 30 for Medium", ct.ExpectedDays)
	}
	if ct.SubCategories != "Annual,Digital" {
		t.Errorf("sub categories = %q", ct.SubCategories)
	}
}

func TestCaseTypeService_Create_DuplicateName(t *testing.T) {
	repos := newMockRepos()
	svc := NewCaseTypeService(repos.repo, zap.NewNop())
	ctx := context.Background()

	req := &dto.CreateCaseTypeRequest{Name: "Superannuation"}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrCaseTypeExists) {
		t.Errorf("err = %v, want ErrCaseTypeExists", err)
	}
}

func TestCaseTypeService_Create_UnknownWorkflow(t *testing.T) {
	repos := newMockRepos()
	svc := NewCaseTypeService(repos.repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateCaseTypeRequest{
		Name:         "Broken",
		WorkflowType: "Type_Z",
	})
	if err == nil {
		t.Fatal("unknown workflow type accepted")
	}
}

func TestCaseTypeService_Update_ValidatesWorkflow(t *testing.T) {
	repos := newMockRepos()
	svc := NewCaseTypeService(repos.repo, zap.NewNop())
	ctx := context.Background()

	ct, err := svc.Create(ctx, &dto.CreateCaseTypeRequest{Name: "Superannuation"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bad := "Type_Z"
	if _, err := svc.Update(ctx, ct.CaseTypeID, &dto.UpdateCaseTypeRequest{WorkflowType: &bad}); err == nil {
		t.Error("unknown workflow type accepted on update")
	}

	extended := workflow.TypeExtended
	got, err := svc.Update(ctx, ct.CaseTypeID, &dto.UpdateCaseTypeRequest{WorkflowType: &extended})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.WorkflowType != workflow.TypeExtended {
		t.Errorf("workflow = %s", got.WorkflowType)
	}
}

func TestTriggerService_Create(t *testing.T) {
	repos := newMockRepos()
	ctx := context.Background()
	types := NewCaseTypeService(repos.repo, zap.NewNop())
	svc := NewTriggerService(repos.repo, zap.NewNop())

	ct, err := types.Create(ctx, &dto.CreateCaseTypeRequest{Name: "Superannuation"})
	if err != nil {
		t.Fatalf("seed case type: %v", err)
	}

	trg, err := svc.Create(ctx, &dto.CreateTriggerRequest{
		CaseTypeID:  ct.CaseTypeID,
		RecordTypes: []string{"SERVICE_BOOK", "PENSION_FILE"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if trg.RecordTypes != "SERVICE_BOOK,PENSION_FILE" {
		t.Errorf("record types = %q", trg.RecordTypes)
	}
	if !trg.IsActive {
		t.Error("new trigger should be active")
	}

	_, err = svc.Create(ctx, &dto.CreateTriggerRequest{CaseTypeID: "missing", RecordTypes: []string{"X"}})
	if !errors.Is(err, ErrCaseTypeNotFound) {
		t.Errorf("err = %v, want ErrCaseTypeNotFound", err)
	}
}

func TestTriggerService_Update_Deactivate(t *testing.T) {
	repos := newMockRepos()
	ctx := context.Background()
	types := NewCaseTypeService(repos.repo, zap.NewNop())
	svc := NewTriggerService(repos.repo, zap.NewNop())

	ct, _ := types.Create(ctx, &dto.CreateCaseTypeRequest{Name: "Superannuation"})
	trg, err := svc.Create(ctx, &dto.CreateTriggerRequest{CaseTypeID: ct.CaseTypeID, RecordTypes: []string{"SERVICE_BOOK"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	off := false
	got, err := svc.Update(ctx, trg.TriggerID, &dto.UpdateTriggerRequest{IsActive: &off})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.IsActive {
		t.Error("trigger still active after deactivation")
	}
}
