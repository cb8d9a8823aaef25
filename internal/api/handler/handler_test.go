package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/jwt"
	"github.com/Abhijeet357/case-management/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock services ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	changePassErr error
	meResult      *dto.UserResponse
	meErr         error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}
func (m *mockAuthService) Me(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}

type mockCaseService struct {
	registerResult *model.Case
	registerErr    error
	getResult      *model.Case
	getMovements   []model.CaseMovement
	getErr         error
	listResult     []model.Case
	listTotal      int64
	listErr        error
	moveResult     *model.Case
	moveErr        error
	holdersResult  []dto.HolderOption
	holdersErr     error
	importResult   *dto.ImportCasesResponse
	importErr      error
}

func (m *mockCaseService) Register(_ context.Context, _ string, _ *dto.RegisterCaseRequest) (*model.Case, error) {
	return m.registerResult, m.registerErr
}
func (m *mockCaseService) Get(_ context.Context, _, _ string) (*model.Case, []model.CaseMovement, error) {
	return m.getResult, m.getMovements, m.getErr
}
func (m *mockCaseService) List(_ context.Context, _ string, _ *dto.CaseListRequest) ([]model.Case, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockCaseService) Move(_ context.Context, _, _ string, _ *dto.MoveCaseRequest) (*model.Case, error) {
	return m.moveResult, m.moveErr
}
func (m *mockCaseService) AvailableHolders(_ context.Context, _, _, _ string) ([]dto.HolderOption, error) {
	return m.holdersResult, m.holdersErr
}
func (m *mockCaseService) ImportCSV(_ context.Context, _ string, _ io.Reader) (*dto.ImportCasesResponse, error) {
	return m.importResult, m.importErr
}
func (m *mockCaseService) ReconcileDayCounters(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

type mockDashboardService struct {
	summaryResult *dto.DashboardResponse
	summaryErr    error
	invalidations int
}

func (m *mockDashboardService) Summary(_ context.Context, _ string) (*dto.DashboardResponse, error) {
	return m.summaryResult, m.summaryErr
}
func (m *mockDashboardService) Invalidate(_ context.Context) error {
	m.invalidations++
	return nil
}

type mockRequisitionService struct {
	createResult *model.RecordRequisition
	createErr    error
	actionResult *model.RecordRequisition
	actionErr    error
}

func (m *mockRequisitionService) Create(_ context.Context, _ string, _ *dto.CreateRequisitionRequest) (*model.RecordRequisition, error) {
	return m.createResult, m.createErr
}
func (m *mockRequisitionService) CreateFromTrigger(_ context.Context, _ *model.Case, _ []string, _ string) error {
	return nil
}
func (m *mockRequisitionService) Get(_ context.Context, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}
func (m *mockRequisitionService) List(_ context.Context, _ string, _ *dto.RequisitionListRequest) ([]model.RecordRequisition, int64, error) {
	return nil, 0, nil
}
func (m *mockRequisitionService) Approve(_ context.Context, _, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}
func (m *mockRequisitionService) Reject(_ context.Context, _, _, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}
func (m *mockRequisitionService) Handover(_ context.Context, _, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}
func (m *mockRequisitionService) RequestReturn(_ context.Context, _, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}
func (m *mockRequisitionService) ApproveReturn(_ context.Context, _, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}
func (m *mockRequisitionService) RejectReturn(_ context.Context, _, _, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}
func (m *mockRequisitionService) AcknowledgeReturn(_ context.Context, _, _ string) (*model.RecordRequisition, error) {
	return m.actionResult, m.actionErr
}

type mockExportService struct {
	xlsxData []byte
	xlsxErr  error
	icsData  []byte
	icsErr   error
}

func (m *mockExportService) CaseRegisterXLSX(_ context.Context, _ repository.CaseFilters) ([]byte, error) {
	return m.xlsxData, m.xlsxErr
}
func (m *mockExportService) DeadlineCalendarICS(_ context.Context, _ string) ([]byte, error) {
	return m.icsData, m.icsErr
}

// ── helpers ──

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// withAuth injects the context keys the JWT middleware would set.
func withAuth(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("claims", &jwt.Claims{UserID: userID, Role: role, TokenType: jwt.TokenTypeAccess})
		c.Next()
	}
}

// ── auth ──

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "dh1",
		Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "dh1",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_ChangePassword_WrongOld(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{changePassErr: service.ErrWrongPassword})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/auth/password", jsonBody(dto.ChangePasswordRequest{
		OldPassword: "wrong-old",
		NewPassword: "brand-new-pass",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/auth/password", withAuth("user-001", "DH"), h.ChangePassword)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11003 {
		t.Errorf("expected error code 11003, got %d", resp.Code)
	}
}

// ── cases ──

func TestCaseHandler_Register_InvalidatesDashboard(t *testing.T) {
	dash := &mockDashboardService{}
	h := NewCaseHandler(&mockCaseService{registerResult: &model.Case{CaseID: "CASE-2026-08-0001"}}, dash)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cases", jsonBody(dto.RegisterCaseRequest{
		CaseTypeID:    "a4f9d8e4-0000-4000-8000-000000000001",
		CaseTitle:     "Superannuation of R K Sharma",
		ApplicantName: "R K Sharma",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/cases", withAuth("user-001", "DH"), h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if dash.invalidations != 1 {
		t.Errorf("expected 1 dashboard invalidation, got %d", dash.invalidations)
	}
}

func TestCaseHandler_Register_Unauthenticated(t *testing.T) {
	h := NewCaseHandler(&mockCaseService{}, &mockDashboardService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cases", jsonBody(dto.RegisterCaseRequest{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/cases", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCaseHandler_Move_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"not found", service.ErrCaseNotFound, http.StatusNotFound, 13001},
		{"not holder", service.ErrNotCaseHolder, http.StatusForbidden, 13004},
		{"completed", service.ErrCaseCompleted, http.StatusConflict, 13005},
		{"invalid movement", service.ErrInvalidMovement, http.StatusBadRequest, 13006},
		{"role mismatch", service.ErrHolderRoleMismatch, http.StatusBadRequest, 13007},
		{"no eligible holder", service.ErrNoEligibleHolder, http.StatusConflict, 13008},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dash := &mockDashboardService{}
			h := NewCaseHandler(&mockCaseService{moveErr: tc.err}, dash)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/cases/some-uid/move", jsonBody(dto.MoveCaseRequest{
				Action: "forward",
			}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/cases/:uid/move", withAuth("user-001", "DH"), h.Move)
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tc.wantCode {
				t.Errorf("expected error code %d, got %d", tc.wantCode, resp.Code)
			}
			if dash.invalidations != 0 {
				t.Errorf("failed move must not invalidate the dashboard")
			}
		})
	}
}

func TestCaseHandler_Move_BadAction(t *testing.T) {
	h := NewCaseHandler(&mockCaseService{}, &mockDashboardService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cases/some-uid/move", jsonBody(dto.MoveCaseRequest{
		Action: "sideways",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/cases/:uid/move", withAuth("user-001", "DH"), h.Move)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown action, got %d", w.Code)
	}
}

func TestCaseHandler_ImportCSV_MissingFile(t *testing.T) {
	h := NewCaseHandler(&mockCaseService{}, &mockDashboardService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cases/import", nil)

	r := gin.New()
	r.POST("/cases/import", withAuth("user-001", "ADMIN"), h.ImportCSV)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ── requisitions ──

func TestRequisitionHandler_Approve_NotApprover(t *testing.T) {
	h := NewRequisitionHandler(&mockRequisitionService{actionErr: service.ErrNotApprover})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requisitions/req-001/approve", nil)

	r := gin.New()
	r.POST("/requisitions/:id/approve", withAuth("user-002", "AAO"), h.Approve)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 14003 {
		t.Errorf("expected error code 14003, got %d", resp.Code)
	}
}

func TestRequisitionHandler_Reject_RequiresReason(t *testing.T) {
	h := NewRequisitionHandler(&mockRequisitionService{actionResult: &model.RecordRequisition{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requisitions/req-001/reject", jsonBody(map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/requisitions/:id/reject", withAuth("user-002", "AAO"), h.Reject)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a reason, got %d", w.Code)
	}
}

func TestRequisitionHandler_Create_NothingAvailable(t *testing.T) {
	h := NewRequisitionHandler(&mockRequisitionService{createErr: service.ErrNoRecordsAvailable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requisitions", jsonBody(dto.CreateRequisitionRequest{
		PPONumber:   "PPO-2025-0042",
		RecordTypes: []string{"SERVICE_BOOK"},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/requisitions", withAuth("user-001", "DH"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 14006 {
		t.Errorf("expected error code 14006, got %d", resp.Code)
	}
}

// ── export ──

func TestExportHandler_CaseRegister_Headers(t *testing.T) {
	h := NewExportHandler(&mockExportService{xlsxData: []byte("PK")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/cases?status=pending", nil)

	r := gin.New()
	r.GET("/export/cases", withAuth("user-001", "AO"), h.CaseRegister)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("unexpected content disposition %q", cd)
	}
}

func TestExportHandler_DeadlineCalendar_Mine(t *testing.T) {
	h := NewExportHandler(&mockExportService{icsData: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/deadlines?mine=true", nil)

	r := gin.New()
	r.GET("/export/deadlines", withAuth("user-001", "DH"), h.DeadlineCalendar)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Errorf("expected calendar body, got %q", w.Body.String())
	}
}

// ── dashboard ──

func TestDashboardHandler_Summary(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{
		summaryResult: &dto.DashboardResponse{Total: 4, Pending: 3, Completed: 1},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)

	r := gin.New()
	r.GET("/dashboard", withAuth("user-001", "CCA"), h.Summary)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}
