package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/apperror"
	"go-talent-intake/pkg/audit"

	"github.com/xuri/excelize/v2"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var exportHeaders = map[string]string{
	"id":               "ID",
	"full_name":        "Full Name",
	"age":              "Age",
	"phone_number":     "Phone Number",
	"gender":           "Gender",
	"city":             "City",
	"job_category":     "Job Category",
	"job_role":         "Job Role",
	"years_experience": "Years of Experience",
	"experience_range": "Experience Range",
	"current_salary":   "Current Salary",
	"status":           "Status",
	"created_at":       "Registered At",
	"updated_at":       "Last Updated",
}

// ExportCandidates renders every candidate matching the filter, ordered like
// the listing and capped at the configured row limit.
func (u *candidateUsecase) ExportCandidates(ctx context.Context, req domain.ExportRequest) (*domain.ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = domain.ExportCSV
	}
	switch format {
	case domain.ExportCSV, domain.ExportXLSX, domain.ExportJSON:
	default:
		return nil, apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", req.Format))
	}

	candidates, err := u.repo.Search(ctx, req.Filter, u.cfg.ExportMaxRows, 0)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to export candidates", err)
	}

	now := time.Now()
	var file *domain.ExportFile
	switch format {
	case domain.ExportXLSX:
		file, err = exportExcel(candidates, now)
	case domain.ExportJSON:
		file, err = exportJSON(candidates, now)
	default:
		file, err = exportCSV(candidates, now)
	}
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to export candidates", err)
	}

	u.audit.Log(ctx, withRequest(ctx, audit.Event{
		Event:   audit.EventCandidatesExported,
		Details: map[string]any{"format": format, "rows": len(candidates)},
	}))
	return file, nil
}

func exportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("candidates_%s.%s", now.Format("20060102_150405"), ext)
}

// exportExcel generates an Excel file from candidate data
func exportExcel(candidates []domain.Candidate, now time.Time) (*domain.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	columns := domain.ExportableColumns
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, exportHeaders[col])
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, c := range candidates {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, candidateFieldValue(c, col))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}
	f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return &domain.ExportFile{
		Filename:    exportFilename(now, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// exportCSV generates a CSV file from candidate data
func exportCSV(candidates []domain.Candidate, now time.Time) (*domain.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	columns := domain.ExportableColumns
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = exportHeaders[col]
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, c := range candidates {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = fmt.Sprint(candidateFieldValue(c, col))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	return &domain.ExportFile{
		Filename:    exportFilename(now, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func exportJSON(candidates []domain.Candidate, now time.Time) (*domain.ExportFile, error) {
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to write JSON file: %w", err)
	}
	return &domain.ExportFile{
		Filename:    exportFilename(now, "json"),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// candidateFieldValue extracts a column value for spreadsheet-style exports.
func candidateFieldValue(c domain.Candidate, field string) interface{} {
	switch field {
	case "id":
		return c.ID
	case "full_name":
		return c.FullName
	case "age":
		return c.Age
	case "phone_number":
		return c.PhoneNumber
	case "gender":
		return c.Gender
	case "city":
		return c.City
	case "job_category":
		return c.JobCategory
	case "job_role":
		return c.JobRole
	case "years_experience":
		return strconv.FormatFloat(c.YearsExperience, 'f', -1, 64)
	case "experience_range":
		return c.ExperienceRange
	case "current_salary":
		if c.CurrentSalary != nil {
			return strconv.FormatFloat(*c.CurrentSalary, 'f', 2, 64)
		}
		return ""
	case "status":
		return string(c.Status)
	case "created_at":
		return c.CreatedAt.Format(exportTimeLayout)
	case "updated_at":
		return c.UpdatedAt.Format(exportTimeLayout)
	default:
		return ""
	}
}
