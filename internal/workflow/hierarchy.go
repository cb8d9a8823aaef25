package workflow

// subordinates maps each rank to the ranks whose desks it may look into.
// ADMIN is handled separately in CanView.
var subordinates = map[Role][]Role{
	RoleDH:    {},
	RoleAAO:   {RoleDH},
	RoleAO:    {RoleAAO, RoleDH},
	RoleDyCCA: {RoleAO, RoleAAO, RoleDH},
	RoleJtCCA: {RoleDyCCA, RoleAO, RoleAAO, RoleDH},
	RoleCCA:   {RoleJtCCA, RoleDyCCA, RoleAO, RoleAAO, RoleDH},
	RolePrCCA: {RoleCCA, RoleJtCCA, RoleDyCCA, RoleAO, RoleAAO, RoleDH},
}

// Subordinates returns the ranks reachable below the given rank,
// senior to junior. The returned slice is a copy.
func Subordinates(r Role) []Role {
	if r == RoleAdmin {
		out := make([]Role, 0, len(AllRoles))
		for i := len(AllRoles) - 1; i >= 0; i-- {
			out = append(out, AllRoles[i])
		}
		return out
	}
	subs := subordinates[r]
	out := make([]Role, len(subs))
	copy(out, subs)
	return out
}

// CanView reports whether a viewer rank may see work held at a rank:
// its own desk, any subordinate desk, or everything for ADMIN.
func CanView(viewer, holder Role) bool {
	if viewer == RoleAdmin {
		return true
	}
	if viewer == holder {
		return true
	}
	for _, s := range subordinates[viewer] {
		if s == holder {
			return true
		}
	}
	return false
}

// VisibleRoles returns the viewer's own rank plus every subordinate rank.
func VisibleRoles(viewer Role) []Role {
	if viewer == RoleAdmin {
		out := make([]Role, len(AllRoles))
		copy(out, AllRoles)
		return out
	}
	return append([]Role{viewer}, subordinates[viewer]...)
}

// ── capability table ──
//
// Authorization decisions branch here, not on scattered string
// comparisons in handlers.

// CanApproveRequisition reports whether a rank may approve or reject
// record requisitions.
func CanApproveRequisition(r Role) bool {
	return r == RoleAAO
}

// CanRegisterCase reports whether a rank may register new cases.
func CanRegisterCase(r Role) bool {
	return r == RoleDH || r == RoleAdmin
}

// CanRequestRecords reports whether a rank may raise record requisitions.
func CanRequestRecords(r Role) bool {
	return r == RoleDH
}

// IsSeniorStage reports whether a rank sits above the AO level.
func IsSeniorStage(r Role) bool {
	switch r {
	case RoleDyCCA, RoleJtCCA, RoleCCA, RolePrCCA:
		return true
	}
	return false
}
