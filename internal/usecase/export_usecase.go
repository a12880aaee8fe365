package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type exportUsecase struct {
	profileRepo domain.AlumniProfileRepository
	now         func() time.Time
}

// NewExportUsecase creates the admin spreadsheet export of the directory.
func NewExportUsecase(profileRepo domain.AlumniProfileRepository, now func() time.Time) domain.ExportUsecase {
	return &exportUsecase{profileRepo: profileRepo, now: now}
}

var exportHeaders = []string{
	"NICKNAME",
	"DEPARTMENT",
	"GRADUATION YEAR",
	"COMPANIES",
	"SKILLS",
	"CONTACT EMAIL",
	"PORTFOLIO URL",
	"REMARKS",
	"REGISTERED AT",
}

// ExportPublicAlumni writes every public profile matching filter to an xlsx workbook.
// Paging fields of filter are ignored.
func (u *exportUsecase) ExportPublicAlumni(ctx context.Context, filter domain.AlumniFilter) ([]byte, string, error) {
	ctxRole, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || ctxRole != string(domain.RoleAdmin) {
		return nil, "", apperror.Forbidden("Only admins can export the directory")
	}

	profiles, err := u.collect(ctx, filter)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Alumni"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", apperror.Internal(err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx := range profiles {
		row := exportRow(profiles[rowIdx].ToPublic())
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to write Excel file: %w", err))
	}

	filename := fmt.Sprintf("alumni_directory_%s.xlsx", u.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func (u *exportUsecase) collect(ctx context.Context, filter domain.AlumniFilter) ([]domain.AlumniProfile, error) {
	filter.Limit = domain.MaxAlumniPage
	filter.Offset = 0

	var all []domain.AlumniProfile
	for {
		page, total, err := u.profileRepo.ListPublic(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || int64(len(all)) >= total {
			return all, nil
		}
		filter.Offset += len(page)
	}
}

// exportRow renders the directory view, so hidden contact emails stay hidden.
func exportRow(p domain.PublicAlumniProfile) []interface{} {
	return []interface{}{
		deref(p.Nickname),
		string(p.Department),
		p.GraduationYear,
		strings.Join(p.CompanyNames, ", "),
		strings.Join(p.Skills, ", "),
		deref(p.ContactEmail),
		deref(p.PortfolioURL),
		deref(p.Remarks),
		p.CreatedAt.Format("2006-01-02"),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
