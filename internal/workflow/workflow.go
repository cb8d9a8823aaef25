package workflow

import "fmt"

// Role is a rank in the pension-office approval hierarchy.
type Role string

const (
	RoleDH    Role = "DH"
	RoleAAO   Role = "AAO"
	RoleAO    Role = "AO"
	RoleDyCCA Role = "Dy.CCA"
	RoleJtCCA Role = "Jt.CCA"
	RoleCCA   Role = "CCA"
	RolePrCCA Role = "Pr.CCA"
	RoleAdmin Role = "ADMIN"
)

var roleLabels = map[Role]string{
	RoleDH:    "Dealing Hand",
	RoleAAO:   "Assistant Accounts Officer",
	RoleAO:    "Accounts Officer",
	RoleDyCCA: "Deputy Chief Controller of Accounts",
	RoleJtCCA: "Joint Chief Controller of Accounts",
	RoleCCA:   "Chief Controller of Accounts",
	RolePrCCA: "Principal Chief Controller of Accounts",
	RoleAdmin: "Administrator",
}

// ParseRole validates a role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleLabels[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether the role is one of the defined ranks.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the full designation of the rank.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// AllRoles lists the ranks eligible to hold cases, junior to senior.
var AllRoles = []Role{RoleDH, RoleAAO, RoleAO, RoleDyCCA, RoleJtCCA, RoleCCA, RolePrCCA}

// ── workflow table ──

// Workflow types determine the ordered stage sequence a case traverses.
const (
	TypeA        = "Type_A"
	TypeB        = "Type_B"
	TypeC        = "Type_C"
	TypeExtended = "Type_Extended"
)

// Stages is the static per-case-type stage sequence.
var Stages = map[string][]Role{
	TypeA:        {RoleDH, RoleAAO, RoleAO},
	TypeB:        {RoleDH, RoleAAO, RoleAO, RoleJtCCA},
	TypeC:        {RoleDH, RoleAAO, RoleAO, RoleJtCCA, RoleCCA},
	TypeExtended: {RoleDH, RoleAAO, RoleAO, RoleDyCCA, RoleJtCCA, RoleCCA, RolePrCCA},
}

// StagesFor returns the stage sequence for a workflow type.
func StagesFor(workflowType string) ([]Role, error) {
	stages, ok := Stages[workflowType]
	if !ok {
		return nil, fmt.Errorf("unknown workflow type %q", workflowType)
	}
	return stages, nil
}

// StageIndex locates a holder role within a workflow.
// A holder whose role is not part of the workflow violates the
// holder-role invariant and yields an error.
func StageIndex(workflowType string, role Role) (int, error) {
	stages, err := StagesFor(workflowType)
	if err != nil {
		return 0, err
	}
	for i, s := range stages {
		if s == role {
			return i, nil
		}
	}
	return 0, fmt.Errorf("role %s is not a stage of workflow %s", role, workflowType)
}

// ── movement types ──

const (
	MovementForward  = "forward"
	MovementBackward = "backward"
	MovementReassign = "reassign"
	MovementComplete = "complete"
)

// ── priority and status colour ──

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// ExpectedDays maps a priority to its completion deadline in days.
func ExpectedDays(priority string) int {
	switch priority {
	case PriorityHigh:
		return 15
	case PriorityLow:
		return 45
	default:
		return 30
	}
}

// Status colours shown on dashboards.
const (
	ColorGreen  = "Green"
	ColorOrange = "Orange"
	ColorRed    = "Red"
	ColorBlue   = "Blue"
)

// StatusColor derives the dashboard colour from the holding stage and
// the case priority. Senior stages are always Blue.
func StatusColor(stage Role, priority string) string {
	switch stage {
	case RoleJtCCA, RoleCCA, RolePrCCA:
		return ColorBlue
	}
	switch priority {
	case PriorityHigh:
		return ColorRed
	case PriorityMedium:
		return ColorOrange
	default:
		return ColorGreen
	}
}
