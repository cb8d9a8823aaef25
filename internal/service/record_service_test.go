package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
)

func newRecordFixture(t *testing.T) (*mockRepos, RecordService, *model.PPOMaster, *model.Location) {
	t.Helper()
	ctx := context.Background()
	repos := newMockRepos()

	ppo := &model.PPOMaster{PPONumber: "PPO-2025-0007", Name: "B Singh"}
	if err := repos.ppos.Create(ctx, ppo); err != nil {
		t.Fatalf("seed ppo: %v", err)
	}
	room := &model.Location{Name: "Record Room", LocationType: model.LocationRecordRoom, IsActive: true}
	if err := repos.locs.Create(ctx, room); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return repos, NewRecordService(repos.repo, zap.NewNop()), ppo, room
}

func TestRecordService_Create(t *testing.T) {
	repos, svc, _, room := newRecordFixture(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, "keeper-1", &dto.CreateRecordRequest{
		PPONumber:  "PPO-2025-0007",
		RecordType: "SERVICE_BOOK",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Status != model.RecordAvailable {
		t.Errorf("status = %s, want AVAILABLE", rec.Status)
	}
	if rec.CurrentLocationID != room.LocationID {
		t.Errorf("location = %s, want the default record room", rec.CurrentLocationID)
	}

	moves, _ := repos.recMvs.ListByRecord(ctx, rec.RecordID)
	if len(moves) != 1 {
		t.Fatalf("intake movements = %d, want 1", len(moves))
	}
	if moves[0].ToLocationID != room.LocationID {
		t.Error("intake movement does not land in the record room")
	}
}

func TestRecordService_Create_OnePerPensionerAndType(t *testing.T) {
	_, svc, _, _ := newRecordFixture(t)
	ctx := context.Background()

	req := &dto.CreateRecordRequest{PPONumber: "PPO-2025-0007", RecordType: "SERVICE_BOOK"}
	if _, err := svc.Create(ctx, "keeper-1", req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, "keeper-1", req); !errors.Is(err, ErrRecordExists) {
		t.Errorf("err = %v, want ErrRecordExists", err)
	}

	// A different type for the same pensioner is fine.
	if _, err := svc.Create(ctx, "keeper-1", &dto.CreateRecordRequest{
		PPONumber: "PPO-2025-0007", RecordType: "PENSION_FILE",
	}); err != nil {
		t.Errorf("second type: %v", err)
	}
}

func TestRecordService_Create_UnknownPPO(t *testing.T) {
	_, svc, _, _ := newRecordFixture(t)

	_, err := svc.Create(context.Background(), "keeper-1", &dto.CreateRecordRequest{
		PPONumber: "PPO-0000-0000", RecordType: "SERVICE_BOOK",
	})
	if !errors.Is(err, ErrPPONotFound) {
		t.Errorf("err = %v, want ErrPPONotFound", err)
	}
}

func TestRecordService_Mark(t *testing.T) {
	repos, svc, _, _ := newRecordFixture(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, "keeper-1", &dto.CreateRecordRequest{
		PPONumber: "PPO-2025-0007", RecordType: "SERVICE_BOOK",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Mark(ctx, "keeper-1", rec.RecordID, &dto.MarkRecordRequest{Status: model.RecordMissing})
	if err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if got.Status != model.RecordMissing {
		t.Errorf("status = %s, want MISSING", got.Status)
	}

	// Checked-out records go through the return leg, not Mark.
	repos.records.UpdateStatus(ctx, []string{rec.RecordID}, model.RecordInUse)
	_, err = svc.Mark(ctx, "keeper-1", rec.RecordID, &dto.MarkRecordRequest{Status: model.RecordArchived})
	if !errors.Is(err, ErrRecordCheckedOut) {
		t.Errorf("err = %v, want ErrRecordCheckedOut", err)
	}
}

func TestRecordService_CreateLocation(t *testing.T) {
	_, svc, _, _ := newRecordFixture(t)
	ctx := context.Background()

	loc, err := svc.CreateLocation(ctx, &dto.CreateLocationRequest{
		Name:         "CPAO Office",
		LocationType: model.LocationOffice,
	})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if !loc.IsActive {
		t.Error("new location should be active")
	}

	offices, err := svc.ListLocations(ctx, model.LocationOffice)
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(offices) != 1 {
		t.Errorf("offices = %d, want 1", len(offices))
	}
}
