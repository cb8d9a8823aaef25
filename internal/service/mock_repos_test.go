package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
)

// ── mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.UserProfile
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.UserProfile)}
}

func (m *mockUserRepo) Create(_ context.Context, u *model.UserProfile) error {
	if u.UserID == "" {
		m.seq++
		u.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[u.UserID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.UserProfile, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.UserProfile, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, f repository.UserFilters, _, _ int) ([]model.UserProfile, int64, error) {
	var out []model.UserProfile
	for _, u := range m.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.ActiveHolders && !u.IsActiveHolder {
			continue
		}
		if f.RecordKeepers && !u.IsRecordKeeper {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) ListHoldersByRole(_ context.Context, role string) ([]model.UserProfile, error) {
	var out []model.UserProfile
	for _, u := range m.users {
		if u.Role == role && u.IsActiveHolder {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) FirstActiveByRole(_ context.Context, role string) (*model.UserProfile, error) {
	var best *model.UserProfile
	for _, u := range m.users {
		if u.Role != role || !u.IsActiveHolder {
			continue
		}
		if best == nil || u.UserID < best.UserID {
			best = u
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (m *mockUserRepo) Update(_ context.Context, u *model.UserProfile) error {
	m.users[u.UserID] = u
	return nil
}

// ── mock CaseTypeRepository ──

type mockCaseTypeRepo struct {
	types map[string]*model.CaseType
	seq   int
}

func newMockCaseTypeRepo() *mockCaseTypeRepo {
	return &mockCaseTypeRepo{types: make(map[string]*model.CaseType)}
}

func (m *mockCaseTypeRepo) Create(_ context.Context, t *model.CaseType) error {
	if t.CaseTypeID == "" {
		m.seq++
		t.CaseTypeID = fmt.Sprintf("ct-%03d", m.seq)
	}
	m.types[t.CaseTypeID] = t
	return nil
}

func (m *mockCaseTypeRepo) GetByID(_ context.Context, id string) (*model.CaseType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaseTypeRepo) GetByName(_ context.Context, name string) (*model.CaseType, error) {
	for _, t := range m.types {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaseTypeRepo) List(_ context.Context, activeOnly bool) ([]model.CaseType, error) {
	var out []model.CaseType
	for _, t := range m.types {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockCaseTypeRepo) Update(_ context.Context, t *model.CaseType) error {
	m.types[t.CaseTypeID] = t
	return nil
}

// ── mock CaseRepository ──

type mockCaseRepo struct {
	cases map[string]*model.Case
	seq   int
}

func newMockCaseRepo() *mockCaseRepo {
	return &mockCaseRepo{cases: make(map[string]*model.Case)}
}

func (m *mockCaseRepo) Create(_ context.Context, c *model.Case) error {
	if c.ID == "" {
		m.seq++
		c.ID = fmt.Sprintf("case-%03d", m.seq)
	}
	cp := *c
	m.cases[c.ID] = &cp
	return nil
}

func (m *mockCaseRepo) GetByID(_ context.Context, id string) (*model.Case, error) {
	if c, ok := m.cases[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaseRepo) GetByCaseID(_ context.Context, caseID string) (*model.Case, error) {
	for _, c := range m.cases {
		if c.CaseID == caseID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaseRepo) List(_ context.Context, f repository.CaseFilters, _, _ int) ([]model.Case, int64, error) {
	var out []model.Case
	for _, c := range m.cases {
		if f.HolderID != "" && c.CurrentHolderID != f.HolderID {
			continue
		}
		if f.Priority != "" && c.Priority != f.Priority {
			continue
		}
		if f.Status == "pending" && c.IsCompleted {
			continue
		}
		if f.Status == "completed" && !c.IsCompleted {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *mockCaseRepo) ListPending(_ context.Context) ([]model.Case, error) {
	var out []model.Case
	for _, c := range m.cases {
		if !c.IsCompleted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCaseRepo) ListByHolder(_ context.Context, holderID string, pendingOnly bool) ([]model.Case, error) {
	var out []model.Case
	for _, c := range m.cases {
		if c.CurrentHolderID != holderID {
			continue
		}
		if pendingOnly && c.IsCompleted {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCaseRepo) Update(_ context.Context, c *model.Case) error {
	cp := *c
	m.cases[c.ID] = &cp
	return nil
}

func (m *mockCaseRepo) UpdateDayCounters(_ context.Context, id string, daysInCurrent, totalPending int) error {
	c, ok := m.cases[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.DaysInCurrent = daysInCurrent
	c.TotalDaysPending = totalPending
	return nil
}

func (m *mockCaseRepo) Stats(_ context.Context, now time.Time) (*repository.CaseStats, error) {
	s := &repository.CaseStats{}
	for _, c := range m.cases {
		s.Total++
		if c.IsCompleted {
			s.Completed++
			continue
		}
		s.Pending++
		if c.IsOverdue(now) {
			s.Overdue++
		}
	}
	return s, nil
}

func (m *mockCaseRepo) CountByPriority(_ context.Context, priority string, pendingOnly bool) (int64, error) {
	var n int64
	for _, c := range m.cases {
		if c.Priority != priority {
			continue
		}
		if pendingOnly && c.IsCompleted {
			continue
		}
		n++
	}
	return n, nil
}

func (m *mockCaseRepo) CountByHolder(_ context.Context, holderID string, pendingOnly bool) (int64, error) {
	var n int64
	for _, c := range m.cases {
		if c.CurrentHolderID != holderID {
			continue
		}
		if pendingOnly && c.IsCompleted {
			continue
		}
		n++
	}
	return n, nil
}

func (m *mockCaseRepo) CountByHolderRole(_ context.Context, _ string, _ bool) (int64, error) {
	return 0, nil
}

func (m *mockCaseRepo) ListRecent(_ context.Context, limit int) ([]model.Case, error) {
	var out []model.Case
	for _, c := range m.cases {
		if len(out) >= limit {
			break
		}
		out = append(out, *c)
	}
	return out, nil
}

// ── mock CaseMovementRepository ──

type mockCaseMovementRepo struct {
	movements []model.CaseMovement
	seq       int
}

func newMockCaseMovementRepo() *mockCaseMovementRepo {
	return &mockCaseMovementRepo{}
}

func (m *mockCaseMovementRepo) Create(_ context.Context, mv *model.CaseMovement) error {
	m.seq++
	mv.MovementID = fmt.Sprintf("mv-%03d", m.seq)
	m.movements = append(m.movements, *mv)
	return nil
}

func (m *mockCaseMovementRepo) ListByCase(_ context.Context, caseUID string) ([]model.CaseMovement, error) {
	var out []model.CaseMovement
	for _, mv := range m.movements {
		if mv.CaseUID == caseUID {
			out = append(out, mv)
		}
	}
	return out, nil
}

// ── mock PPOMasterRepository ──

type mockPPOMasterRepo struct {
	ppos map[string]*model.PPOMaster
	seq  int
}

func newMockPPOMasterRepo() *mockPPOMasterRepo {
	return &mockPPOMasterRepo{ppos: make(map[string]*model.PPOMaster)}
}

func (m *mockPPOMasterRepo) Create(_ context.Context, p *model.PPOMaster) error {
	if p.PPOMasterID == "" {
		m.seq++
		p.PPOMasterID = fmt.Sprintf("ppo-%03d", m.seq)
	}
	m.ppos[p.PPOMasterID] = p
	return nil
}

func (m *mockPPOMasterRepo) GetByID(_ context.Context, id string) (*model.PPOMaster, error) {
	if p, ok := m.ppos[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPPOMasterRepo) GetByNumber(_ context.Context, ppoNumber string) (*model.PPOMaster, error) {
	for _, p := range m.ppos {
		if p.PPONumber == ppoNumber {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPPOMasterRepo) List(_ context.Context, search string, _, _ int) ([]model.PPOMaster, int64, error) {
	var out []model.PPOMaster
	for _, p := range m.ppos {
		if search != "" && !strings.Contains(p.PPONumber, search) && !strings.Contains(p.Name, search) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockPPOMasterRepo) Update(_ context.Context, p *model.PPOMaster) error {
	m.ppos[p.PPOMasterID] = p
	return nil
}

// ── mock RetiringEmployeeRepository ──

type mockRetiringEmployeeRepo struct {
	employees map[string]*model.RetiringEmployee
	seq       int
}

func newMockRetiringEmployeeRepo() *mockRetiringEmployeeRepo {
	return &mockRetiringEmployeeRepo{employees: make(map[string]*model.RetiringEmployee)}
}

func (m *mockRetiringEmployeeRepo) Create(_ context.Context, e *model.RetiringEmployee) error {
	if e.EmployeeUID == "" {
		m.seq++
		e.EmployeeUID = fmt.Sprintf("emp-%03d", m.seq)
	}
	m.employees[e.EmployeeUID] = e
	return nil
}

func (m *mockRetiringEmployeeRepo) GetByID(_ context.Context, id string) (*model.RetiringEmployee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRetiringEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (*model.RetiringEmployee, error) {
	for _, e := range m.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRetiringEmployeeRepo) ListByRetirementWindow(_ context.Context, from, to time.Time) ([]model.RetiringEmployee, error) {
	var out []model.RetiringEmployee
	for _, e := range m.employees {
		if e.RetirementDate.Before(from) || e.RetirementDate.After(to) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockRetiringEmployeeRepo) List(_ context.Context, _, _ int) ([]model.RetiringEmployee, int64, error) {
	var out []model.RetiringEmployee
	for _, e := range m.employees {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (m *mockRetiringEmployeeRepo) Update(_ context.Context, e *model.RetiringEmployee) error {
	m.employees[e.EmployeeUID] = e
	return nil
}

func (m *mockRetiringEmployeeRepo) CountPPOsForYear(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

// ── mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
	seq       int
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, l *model.Location) error {
	if l.LocationID == "" {
		m.seq++
		l.LocationID = fmt.Sprintf("loc-%03d", m.seq)
	}
	m.locations[l.LocationID] = l
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) GetDeskByCustodian(_ context.Context, custodianID string) (*model.Location, error) {
	for _, l := range m.locations {
		if l.LocationType == model.LocationUserDesk && l.CustodianID != nil && *l.CustodianID == custodianID {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) GetOrCreateDesk(ctx context.Context, custodianID, label string) (*model.Location, error) {
	if l, err := m.GetDeskByCustodian(ctx, custodianID); err == nil {
		return l, nil
	}
	l := &model.Location{
		Name:         label,
		LocationType: model.LocationUserDesk,
		CustodianID:  &custodianID,
		IsActive:     true,
	}
	if err := m.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (m *mockLocationRepo) List(_ context.Context, locationType string) ([]model.Location, error) {
	var out []model.Location
	for _, l := range m.locations {
		if locationType != "" && l.LocationType != locationType {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

// ── mock RecordRepository ──

type mockRecordRepo struct {
	records map[string]*model.Record
	seq     int
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: make(map[string]*model.Record)}
}

func (m *mockRecordRepo) Create(_ context.Context, r *model.Record) error {
	if r.RecordID == "" {
		m.seq++
		r.RecordID = fmt.Sprintf("rec-%03d", m.seq)
	}
	m.records[r.RecordID] = r
	return nil
}

func (m *mockRecordRepo) GetByID(_ context.Context, id string) (*model.Record, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecordRepo) GetByIDs(_ context.Context, ids []string) ([]model.Record, error) {
	var out []model.Record
	for _, id := range ids {
		if r, ok := m.records[id]; ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRecordRepo) GetByOwnerAndType(_ context.Context, ppoMasterID, recordType string) (*model.Record, error) {
	for _, r := range m.records {
		if r.PPOMasterID == ppoMasterID && r.RecordType == recordType {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecordRepo) ListAvailableByOwnerAndTypes(_ context.Context, ppoMasterID string, recordTypes []string) ([]model.Record, error) {
	typeSet := make(map[string]bool, len(recordTypes))
	for _, t := range recordTypes {
		typeSet[t] = true
	}
	var out []model.Record
	for _, r := range m.records {
		if r.PPOMasterID == ppoMasterID && typeSet[r.RecordType] && r.Status == model.RecordAvailable {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRecordRepo) ListInUseAtLocation(_ context.Context, locationID string) ([]model.Record, error) {
	var out []model.Record
	for _, r := range m.records {
		if r.CurrentLocationID == locationID && r.Status == model.RecordInUse {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRecordRepo) List(_ context.Context, f repository.RecordFilters, _, _ int) ([]model.Record, int64, error) {
	var out []model.Record
	for _, r := range m.records {
		if f.RecordType != "" && r.RecordType != f.RecordType {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (m *mockRecordRepo) Update(_ context.Context, r *model.Record) error {
	m.records[r.RecordID] = r
	return nil
}

func (m *mockRecordRepo) UpdateStatus(_ context.Context, ids []string, status string) error {
	for _, id := range ids {
		if r, ok := m.records[id]; ok {
			r.Status = status
		}
	}
	return nil
}

func (m *mockRecordRepo) UpdateStatusAndLocation(_ context.Context, ids []string, status, locationID string) error {
	for _, id := range ids {
		if r, ok := m.records[id]; ok {
			r.Status = status
			r.CurrentLocationID = locationID
		}
	}
	return nil
}

// ── mock RecordMovementRepository ──

type mockRecordMovementRepo struct {
	movements []model.RecordMovement
	seq       int
}

func newMockRecordMovementRepo() *mockRecordMovementRepo {
	return &mockRecordMovementRepo{}
}

func (m *mockRecordMovementRepo) Create(_ context.Context, mv *model.RecordMovement) error {
	m.seq++
	mv.RecordMovementID = fmt.Sprintf("rmv-%03d", m.seq)
	m.movements = append(m.movements, *mv)
	return nil
}

func (m *mockRecordMovementRepo) CreateBatch(ctx context.Context, mvs []model.RecordMovement) error {
	for i := range mvs {
		if err := m.Create(ctx, &mvs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockRecordMovementRepo) ListByRecord(_ context.Context, recordID string) ([]model.RecordMovement, error) {
	var out []model.RecordMovement
	for _, mv := range m.movements {
		if mv.RecordID == recordID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *mockRecordMovementRepo) ListByRequisition(_ context.Context, requisitionID string) ([]model.RecordMovement, error) {
	var out []model.RecordMovement
	for _, mv := range m.movements {
		if mv.RequisitionID != nil && *mv.RequisitionID == requisitionID {
			out = append(out, mv)
		}
	}
	return out, nil
}

// ── mock RequisitionRepository ──

type mockRequisitionRepo struct {
	requisitions map[string]*model.RecordRequisition
	records      *mockRecordRepo
	seq          int
}

func newMockRequisitionRepo(records *mockRecordRepo) *mockRequisitionRepo {
	return &mockRequisitionRepo{
		requisitions: make(map[string]*model.RecordRequisition),
		records:      records,
	}
}

func (m *mockRequisitionRepo) Create(ctx context.Context, r *model.RecordRequisition, recordIDs []string) error {
	if r.RequisitionID == "" {
		m.seq++
		r.RequisitionID = fmt.Sprintf("req-%03d", m.seq)
	}
	recs, err := m.records.GetByIDs(ctx, recordIDs)
	if err != nil {
		return err
	}
	r.Records = recs
	m.requisitions[r.RequisitionID] = r
	return nil
}

func (m *mockRequisitionRepo) GetByID(ctx context.Context, id string) (*model.RecordRequisition, error) {
	r, ok := m.requisitions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// refresh record snapshots the way Preload would
	ids := make([]string, len(r.Records))
	for i, rec := range r.Records {
		ids[i] = rec.RecordID
	}
	recs, _ := m.records.GetByIDs(ctx, ids)
	r.Records = recs
	return r, nil
}

func (m *mockRequisitionRepo) GetByNumber(_ context.Context, no string) (*model.RecordRequisition, error) {
	for _, r := range m.requisitions {
		if r.RequisitionNo == no {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequisitionRepo) List(_ context.Context, f repository.RequisitionFilters, _, _ int) ([]model.RecordRequisition, int64, error) {
	var out []model.RecordRequisition
	for _, r := range m.requisitions {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.RequestedByID != "" && r.RequestedByID != f.RequestedByID {
			continue
		}
		if f.ApproverID != "" && r.ApprovingAAOID != f.ApproverID {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (m *mockRequisitionRepo) ListOpenByCase(ctx context.Context, caseUID string) ([]model.RecordRequisition, error) {
	var out []model.RecordRequisition
	for id, r := range m.requisitions {
		if r.CaseUID == nil || *r.CaseUID != caseUID {
			continue
		}
		if r.Status == model.ReqRejected || r.Status == model.ReqReturned {
			continue
		}
		fresh, err := m.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *fresh)
	}
	return out, nil
}

func (m *mockRequisitionRepo) Update(_ context.Context, r *model.RecordRequisition) error {
	m.requisitions[r.RequisitionID] = r
	return nil
}

// ── mock GrievanceRepository ──

type mockGrievanceRepo struct {
	grievances map[string]*model.Grievance
	seq        int
}

func newMockGrievanceRepo() *mockGrievanceRepo {
	return &mockGrievanceRepo{grievances: make(map[string]*model.Grievance)}
}

func (m *mockGrievanceRepo) Create(_ context.Context, g *model.Grievance) error {
	if g.ID == "" {
		m.seq++
		g.ID = fmt.Sprintf("grv-%03d", m.seq)
	}
	m.grievances[g.ID] = g
	return nil
}

func (m *mockGrievanceRepo) GetByID(_ context.Context, id string) (*model.Grievance, error) {
	if g, ok := m.grievances[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGrievanceRepo) GetByGrievanceID(_ context.Context, grievanceID string) (*model.Grievance, error) {
	for _, g := range m.grievances {
		if g.GrievanceID == grievanceID {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGrievanceRepo) List(_ context.Context, f repository.GrievanceFilters, _, _ int) ([]model.Grievance, int64, error) {
	var out []model.Grievance
	for _, g := range m.grievances {
		if f.Status != "" && g.Status != f.Status {
			continue
		}
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (m *mockGrievanceRepo) Update(_ context.Context, g *model.Grievance) error {
	m.grievances[g.ID] = g
	return nil
}

func (m *mockGrievanceRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, g := range m.grievances {
		out[g.Status]++
	}
	return out, nil
}

// ── mock TriggerRepository ──

type mockTriggerRepo struct {
	triggers map[string]*model.RequisitionTrigger
	seq      int
}

func newMockTriggerRepo() *mockTriggerRepo {
	return &mockTriggerRepo{triggers: make(map[string]*model.RequisitionTrigger)}
}

func (m *mockTriggerRepo) Create(_ context.Context, t *model.RequisitionTrigger) error {
	if t.TriggerID == "" {
		m.seq++
		t.TriggerID = fmt.Sprintf("trg-%03d", m.seq)
	}
	m.triggers[t.TriggerID] = t
	return nil
}

func (m *mockTriggerRepo) GetByID(_ context.Context, id string) (*model.RequisitionTrigger, error) {
	if t, ok := m.triggers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTriggerRepo) ListActiveByEvent(_ context.Context, event, caseTypeID string) ([]model.RequisitionTrigger, error) {
	var out []model.RequisitionTrigger
	for _, t := range m.triggers {
		if t.TriggerEvent == event && t.CaseTypeID == caseTypeID && t.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTriggerRepo) List(_ context.Context) ([]model.RequisitionTrigger, error) {
	var out []model.RequisitionTrigger
	for _, t := range m.triggers {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTriggerRepo) Update(_ context.Context, t *model.RequisitionTrigger) error {
	m.triggers[t.TriggerID] = t
	return nil
}

// ── mock SystemConfigRepository ──

type mockSystemConfigRepo struct {
	cfg *model.SystemConfig
}

func newMockSystemConfigRepo() *mockSystemConfigRepo {
	return &mockSystemConfigRepo{}
}

func (m *mockSystemConfigRepo) Get(_ context.Context) (*model.SystemConfig, error) {
	if m.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.cfg, nil
}

func (m *mockSystemConfigRepo) Update(_ context.Context, c *model.SystemConfig) error {
	c.ID = 1
	m.cfg = c
	return nil
}

// ── mock SequenceRepository ──

type mockSequenceRepo struct {
	counters map[string]int64
}

func newMockSequenceRepo() *mockSequenceRepo {
	return &mockSequenceRepo{counters: make(map[string]int64)}
}

func (m *mockSequenceRepo) Next(_ context.Context, scope, period string) (int64, error) {
	key := scope + "|" + period
	m.counters[key]++
	return m.counters[key], nil
}

// ── mock FamilyClaimRepository ──

type mockFamilyClaimRepo struct {
	claims map[string]*model.FamilyPensionClaim
	seq    int
}

func newMockFamilyClaimRepo() *mockFamilyClaimRepo {
	return &mockFamilyClaimRepo{claims: make(map[string]*model.FamilyPensionClaim)}
}

func (m *mockFamilyClaimRepo) Create(_ context.Context, c *model.FamilyPensionClaim) error {
	if c.ClaimID == "" {
		m.seq++
		c.ClaimID = fmt.Sprintf("clm-%03d", m.seq)
	}
	m.claims[c.ClaimID] = c
	return nil
}

func (m *mockFamilyClaimRepo) GetByCase(_ context.Context, caseUID string) (*model.FamilyPensionClaim, error) {
	for _, c := range m.claims {
		if c.CaseUID == caseUID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFamilyClaimRepo) List(_ context.Context, status string, _, _ int) ([]model.FamilyPensionClaim, int64, error) {
	var out []model.FamilyPensionClaim
	for _, c := range m.claims {
		if status != "" && c.ClaimStatus != status {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *mockFamilyClaimRepo) Update(_ context.Context, c *model.FamilyPensionClaim) error {
	m.claims[c.ClaimID] = c
	return nil
}

// ── aggregate fixture ──

// mockRepos bundles every mock behind a Repository aggregate with no
// database, so Transaction runs the callback directly.
type mockRepos struct {
	repo     *repository.Repository
	users    *mockUserRepo
	types    *mockCaseTypeRepo
	cases    *mockCaseRepo
	caseMvs  *mockCaseMovementRepo
	ppos     *mockPPOMasterRepo
	retiring *mockRetiringEmployeeRepo
	locs     *mockLocationRepo
	records  *mockRecordRepo
	recMvs   *mockRecordMovementRepo
	reqs     *mockRequisitionRepo
	grvs     *mockGrievanceRepo
	triggers *mockTriggerRepo
	cfg      *mockSystemConfigRepo
	seqs     *mockSequenceRepo
	claims   *mockFamilyClaimRepo
}

func newMockRepos() *mockRepos {
	m := &mockRepos{
		users:    newMockUserRepo(),
		types:    newMockCaseTypeRepo(),
		cases:    newMockCaseRepo(),
		caseMvs:  newMockCaseMovementRepo(),
		ppos:     newMockPPOMasterRepo(),
		retiring: newMockRetiringEmployeeRepo(),
		locs:     newMockLocationRepo(),
		records:  newMockRecordRepo(),
		recMvs:   newMockRecordMovementRepo(),
		grvs:     newMockGrievanceRepo(),
		triggers: newMockTriggerRepo(),
		cfg:      newMockSystemConfigRepo(),
		seqs:     newMockSequenceRepo(),
		claims:   newMockFamilyClaimRepo(),
	}
	m.reqs = newMockRequisitionRepo(m.records)
	m.repo = &repository.Repository{
		User:             m.users,
		CaseType:         m.types,
		Case:             m.cases,
		CaseMovement:     m.caseMvs,
		PPOMaster:        m.ppos,
		RetiringEmployee: m.retiring,
		Location:         m.locs,
		Record:           m.records,
		RecordMovement:   m.recMvs,
		Requisition:      m.reqs,
		Grievance:        m.grvs,
		Trigger:          m.triggers,
		SystemConfig:     m.cfg,
		Sequence:         m.seqs,
		FamilyClaim:      m.claims,
	}
	return m
}
