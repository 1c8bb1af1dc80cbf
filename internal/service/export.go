package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"kora-backend/internal/database/models"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportFormat selects the spreadsheet flavor of a roster export
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportService renders a team roster as a downloadable spreadsheet
type ExportService struct {
	playerRepo repository.PlayerRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(playerRepo repository.PlayerRepositoryInterface, teamRepo repository.TeamRepositoryInterface) *ExportService {
	return &ExportService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// ExportOptions controls which columns and players an export includes
type ExportOptions struct {
	Format          ExportFormat
	IncludeArchived bool
	IncludeContacts bool
	IncludeMedical  bool
}

// ExportResult is the rendered file with its download metadata
type ExportResult struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Roster renders the team roster in the requested format. Contact and
// medical columns are opt-in so the default export is safe to share.
func (s *ExportService) Roster(coachID, teamID uuid.UUID, opts ExportOptions) (*ExportResult, error) {
	if opts.Format != ExportFormatCSV && opts.Format != ExportFormatXLSX {
		return nil, apperrors.NewValidationError("format", apperrors.ErrInvalidExportFormat.Error())
	}

	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	players, err := s.playerRepo.ListByTeam(team.ID, opts.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	header := []string{"jersey_number", "first_name", "last_name", "birth_date", "position", "status"}
	if opts.IncludeContacts {
		header = append(header, "email", "phone", "guardian_name")
	}
	if opts.IncludeMedical {
		header = append(header, "medical_note")
	}

	rows := make([][]string, 0, len(players))
	for i := range players {
		rows = append(rows, exportRow(&players[i], opts))
	}

	stamp := time.Now().Format("2006-01-02")
	switch opts.Format {
	case ExportFormatXLSX:
		data, err := renderXLSX(header, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to render workbook: %w", err)
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("roster_%s_%s.xlsx", sanitizeFileName(team.Name), stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		data, err := renderCSV(header, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to render csv: %w", err)
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("roster_%s_%s.csv", sanitizeFileName(team.Name), stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

func exportRow(p *models.Player, opts ExportOptions) []string {
	row := []string{
		strconv.Itoa(p.JerseyNumber),
		p.FirstName,
		p.LastName,
		p.BirthDate.Format("2006-01-02"),
		p.Position,
		string(p.Status),
	}
	if opts.IncludeContacts {
		row = append(row, p.Email, p.Phone, p.GuardianName)
	}
	if opts.IncludeMedical {
		row = append(row, p.MedicalNote)
	}
	return row
}

func renderCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Roster"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sanitizeFileName keeps file names portable across filesystems
func sanitizeFileName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "team"
	}
	return string(out)
}
