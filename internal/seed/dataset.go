package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names read by LoadFile
const (
	SheetCategories = "categories"
	SheetQuestions  = "questions"
)

// QuestionRecord is one question in a seed file. Category is the category
// label, not its id, so files stay valid across databases.
type QuestionRecord struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Dataset is the content of a seed file
type Dataset struct {
	Categories []string         `json:"categories"`
	Questions  []QuestionRecord `json:"questions"`
}

// LoadFile reads a .json or .xlsx seed file
func LoadFile(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".xlsx":
		return loadWorkbook(path)
	default:
		return nil, fmt.Errorf("unsupported seed file %q (want .json or .xlsx)", path)
	}
}

func loadJSON(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &ds, nil
}

// loadWorkbook reads the categories sheet (column A: type) and the questions
// sheet (question, answer, category type, difficulty). Row 1 of each sheet is
// a header.
func loadWorkbook(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var ds Dataset

	categoryRows, err := f.GetRows(SheetCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", SheetCategories, err)
	}
	for _, row := range skipHeader(categoryRows) {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		ds.Categories = append(ds.Categories, strings.TrimSpace(row[0]))
	}

	questionRows, err := f.GetRows(SheetQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", SheetQuestions, err)
	}
	for i, row := range skipHeader(questionRows) {
		if isBlank(row) {
			continue
		}
		line := i + 2
		if len(row) < 4 {
			return nil, fmt.Errorf("%s row %d: want 4 columns, got %d", SheetQuestions, line, len(row))
		}
		difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: difficulty %q is not an integer", SheetQuestions, line, row[3])
		}
		ds.Questions = append(ds.Questions, QuestionRecord{
			Question:   strings.TrimSpace(row[0]),
			Answer:     strings.TrimSpace(row[1]),
			Category:   strings.TrimSpace(row[2]),
			Difficulty: difficulty,
		})
	}

	return &ds, nil
}

func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
