package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"smartscore/backend/models"
	"smartscore/backend/utils"

	"gorm.io/gorm"
)

// Data rows are numbered as spreadsheet lines: the first one follows the header on line 2.
const firstDataLine = 2

var rosterColumns = []string{"ktu_id", "student_name", "batch_id"}

// RosterRow is one student line from an uploaded roster.
type RosterRow struct {
	Line        int
	KtuID       string
	StudentName string
	BatchID     string
}

// ImportResult reports what a roster upload changed.
type ImportResult struct {
	Added  int      `json:"added"`
	Errors []string `json:"errors,omitempty"`
}

// ImportService merges uploaded rosters into the student table.
type ImportService struct {
	DB     *gorm.DB
	Logger *log.Logger
	// BatchSize bounds the rows per INSERT when staged students are written.
	BatchSize int
}

func NewImportService(db *gorm.DB, logger *log.Logger) *ImportService {
	return &ImportService{DB: db, Logger: logger, BatchSize: 200}
}

// ImportFile parses an .xlsx or .csv upload and imports its rows.
func (s *ImportService) ImportFile(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	sheet, err := utils.ReadSheet(filename, r)
	if err != nil {
		return nil, newError(KindFileParse, err, "Could not read %s: %v", filename, err)
	}

	rows, err := ParseRosterRows(sheet)
	if err != nil {
		return nil, err
	}
	return s.ImportStudents(ctx, rows)
}

// ParseRosterRows locates the roster columns by header name and trims every cell.
// Blank lines are dropped but keep their line numbers.
func ParseRosterRows(sheet [][]string) ([]RosterRow, error) {
	if len(sheet) == 0 {
		return nil, newError(KindFileParse, nil, "File is empty")
	}

	index := make(map[string]int, len(sheet[0]))
	for i, name := range sheet[0] {
		key := strings.ToLower(strings.TrimSpace(name))
		key = strings.ReplaceAll(key, " ", "_")
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	var missing []string
	for _, col := range rosterColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, newError(KindFileParse, nil, "Missing required column(s): %s", strings.Join(missing, ", "))
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows := make([]RosterRow, 0, len(sheet)-1)
	for i, raw := range sheet[1:] {
		row := RosterRow{
			Line:        i + firstDataLine,
			KtuID:       cell(raw, "ktu_id"),
			StudentName: cell(raw, "student_name"),
			BatchID:     cell(raw, "batch_id"),
		}
		if row.KtuID == "" && row.StudentName == "" && row.BatchID == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportStudents validates each row on its own and inserts the valid ones in a
// single transaction. Row problems are collected, never fatal; students that
// already exist are skipped silently so the same file can be imported twice.
func (s *ImportService) ImportStudents(ctx context.Context, rows []RosterRow) (*ImportResult, error) {
	result := &ImportResult{}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		batches := make(map[string]bool)
		seen := make(map[string]bool)
		var staged []models.Student

		for _, row := range rows {
			if row.BatchID == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing batch_id", row.Line))
				continue
			}
			if row.KtuID == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing ktu_id", row.Line))
				continue
			}

			found, cached := batches[row.BatchID]
			if !cached {
				var err error
				found, err = exists(tx, &models.Batch{}, "batch_id = ?", row.BatchID)
				if err != nil {
					return err
				}
				batches[row.BatchID] = found
			}
			if !found {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Batch '%s' not found", row.Line, row.BatchID))
				continue
			}

			if seen[row.KtuID] {
				continue
			}
			seen[row.KtuID] = true

			present, err := exists(tx, &models.Student{}, "ktu_id = ?", row.KtuID)
			if err != nil {
				return err
			}
			if present {
				continue
			}

			staged = append(staged, models.Student{
				KtuID:       row.KtuID,
				StudentName: row.StudentName,
				BatchID:     row.BatchID,
			})
		}

		if len(staged) == 0 {
			return nil
		}
		size := s.BatchSize
		if size <= 0 {
			size = len(staged)
		}
		if err := tx.CreateInBatches(&staged, size).Error; err != nil {
			return err
		}
		result.Added = len(staged)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import students: %w", err)
	}

	s.Logger.Printf("Roster import: %d added, %d row errors", result.Added, len(result.Errors))
	return result, nil
}
