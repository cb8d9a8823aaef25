package workflow

import "testing"

func TestStageIndex(t *testing.T) {
	idx, err := StageIndex(TypeA, RoleAAO)
	if err != nil {
		t.Fatalf("StageIndex failed: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected AAO at index 1 of Type_A, got %d", idx)
	}

	if _, err := StageIndex(TypeA, RoleCCA); err == nil {
		t.Error("CCA is not a stage of Type_A, expected error")
	}

	if _, err := StageIndex("Type_X", RoleDH); err == nil {
		t.Error("unknown workflow type must be rejected")
	}
}

func TestStagesFor_Extended(t *testing.T) {
	stages, err := StagesFor(TypeExtended)
	if err != nil {
		t.Fatalf("StagesFor failed: %v", err)
	}
	if len(stages) != 7 {
		t.Fatalf("expected 7 stages, got %d", len(stages))
	}
	if stages[0] != RoleDH || stages[6] != RolePrCCA {
		t.Errorf("Type_Extended must run DH..Pr.CCA, got %v", stages)
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("AAO"); err != nil {
		t.Errorf("AAO should parse: %v", err)
	}
	if _, err := ParseRole("CLERK"); err == nil {
		t.Error("unknown role should be rejected")
	}
	if !Role("Dy.CCA").Valid() {
		t.Error("Dy.CCA should be a valid role")
	}
}

func TestCanView(t *testing.T) {
	cases := []struct {
		viewer, holder Role
		want           bool
	}{
		{RoleAO, RoleDH, true},
		{RoleAO, RoleAAO, true},
		{RoleAO, RoleAO, true},
		{RoleAO, RoleJtCCA, false},
		{RoleDH, RoleAAO, false},
		{RoleDH, RoleDH, true},
		{RoleAdmin, RolePrCCA, true},
		{RoleAdmin, RoleDH, true},
		{RoleCCA, RoleAO, true},
	}
	for _, tc := range cases {
		if got := CanView(tc.viewer, tc.holder); got != tc.want {
			t.Errorf("CanView(%s, %s) = %v, want %v", tc.viewer, tc.holder, got, tc.want)
		}
	}
}

func TestSubordinates(t *testing.T) {
	if len(Subordinates(RoleDH)) != 0 {
		t.Error("DH has no subordinates")
	}
	if len(Subordinates(RoleAdmin)) != len(AllRoles) {
		t.Error("ADMIN sees every rank")
	}
	subs := Subordinates(RolePrCCA)
	if len(subs) != 6 {
		t.Errorf("Pr.CCA should have 6 subordinate ranks, got %d", len(subs))
	}
}

func TestStatusColor(t *testing.T) {
	cases := []struct {
		stage    Role
		priority string
		want     string
	}{
		{RoleJtCCA, PriorityHigh, ColorBlue},
		{RoleCCA, PriorityLow, ColorBlue},
		{RolePrCCA, PriorityMedium, ColorBlue},
		{RoleDH, PriorityHigh, ColorRed},
		{RoleAAO, PriorityMedium, ColorOrange},
		{RoleAO, PriorityLow, ColorGreen},
	}
	for _, tc := range cases {
		if got := StatusColor(tc.stage, tc.priority); got != tc.want {
			t.Errorf("StatusColor(%s, %s) = %s, want %s", tc.stage, tc.priority, got, tc.want)
		}
	}
}

func TestExpectedDays(t *testing.T) {
	if ExpectedDays(PriorityHigh) != 15 {
		t.Error("High priority deadline is 15 days")
	}
	if ExpectedDays(PriorityMedium) != 30 {
		t.Error("Medium priority deadline is 30 days")
	}
	if ExpectedDays(PriorityLow) != 45 {
		t.Error("Low priority deadline is 45 days")
	}
	if ExpectedDays("") != 30 {
		t.Error("unknown priority defaults to 30 days")
	}
}

func TestCapabilities(t *testing.T) {
	if !CanApproveRequisition(RoleAAO) {
		t.Error("AAO approves requisitions")
	}
	if CanApproveRequisition(RoleDH) || CanApproveRequisition(RoleAO) {
		t.Error("only AAO approves requisitions")
	}
	if !CanRequestRecords(RoleDH) {
		t.Error("DH raises requisitions")
	}
	if CanRequestRecords(RoleCCA) {
		t.Error("senior ranks do not raise requisitions")
	}
	if !IsSeniorStage(RoleJtCCA) || IsSeniorStage(RoleAO) {
		t.Error("senior stages start above AO")
	}
}
