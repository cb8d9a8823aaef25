package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
)

// ExportService renders the case register as a spreadsheet and the
// deadline feed as an iCalendar subscription.
type ExportService interface {
	CaseRegisterXLSX(ctx context.Context, filters repository.CaseFilters) ([]byte, error)
	DeadlineCalendarICS(ctx context.Context, holderID string) ([]byte, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const registerSheet = "Case Register"

var registerColumns = []struct {
	title string
	width float64
}{
	{"Case ID", 18},
	{"Registered", 12},
	{"Type", 22},
	{"Title", 40},
	{"Applicant", 24},
	{"PPO Number", 16},
	{"Priority", 10},
	{"Stage", 12},
	{"Holder", 22},
	{"Days Pending", 13},
	{"Expected", 12},
	{"Status", 11},
}

// CaseRegisterXLSX writes the filtered case register to a workbook.
func (s *exportService) CaseRegisterXLSX(ctx context.Context, filters repository.CaseFilters) ([]byte, error) {
	// The register is a full extract, not a page.
	cases, _, err := s.repo.Case.List(ctx, filters, 0, 10000)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(registerSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for i, c := range registerColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(registerSheet, col, col, c.width)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F5B66"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, c := range registerColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(registerSheet, cell, c.title)
		f.SetCellStyle(registerSheet, cell, cell, headerStyle)
	}

	for rowIdx, c := range cases {
		row := rowIdx + 2
		status := "Pending"
		if c.IsCompleted {
			status = "Completed"
		} else if c.IsOverdue(time.Now()) {
			status = "Overdue"
		}
		typeName := ""
		if c.CaseType != nil {
			typeName = c.CaseType.Name
		}
		holder := ""
		if c.CurrentHolder != nil {
			holder = c.CurrentHolder.FullName
		}

		values := []interface{}{
			c.CaseID,
			c.RegistrationDate.Format("2006-01-02"),
			typeName,
			c.CaseTitle,
			c.ApplicantName,
			c.PPONumber,
			c.Priority,
			c.CurrentStatus,
			holder,
			c.TotalDaysPending,
			c.ExpectedDone.Format("2006-01-02"),
			status,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(registerSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeadlineCalendarICS renders pending-case deadlines as all-day
// VEVENTs, one calendar per holder or office-wide when holderID is
// empty.
func (s *exportService) DeadlineCalendarICS(ctx context.Context, holderID string) ([]byte, error) {
	var cases []model.Case
	var err error
	if holderID != "" {
		cases, err = s.repo.Case.ListByHolder(ctx, holderID, true)
	} else {
		cases, err = s.repo.Case.ListPending(ctx)
	}
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pension-cms//case deadlines//EN")
	cal.SetName("Case deadlines")

	now := time.Now()
	for _, c := range cases {
		evt := cal.AddEvent(fmt.Sprintf("%s@pension-cms", c.CaseID))
		evt.SetDtStampTime(now)
		evt.SetAllDayStartAt(c.ExpectedDone)
		evt.SetAllDayEndAt(c.ExpectedDone.AddDate(0, 0, 1))
		evt.SetSummary(fmt.Sprintf("[%s] %s due", c.Priority, c.CaseID))
		evt.SetDescription(c.CaseTitle)
		if c.IsOverdue(now) {
			evt.SetStatus(ics.ObjectStatusCancelled)
		}
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
