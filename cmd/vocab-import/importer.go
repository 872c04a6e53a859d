package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/store"
)

// importOptions defines the import configuration.
type importOptions struct {
	FilePath   string // Path to the Excel or CSV file
	SheetName  string // Name of the sheet to import (Excel only)
	SkipHeader bool   // Skip the first row
	DryRun     bool   // Parse and validate without writing
}

// defaultImportOptions returns the default import configuration.
func defaultImportOptions() importOptions {
	return importOptions{
		SheetName:  "Sheet1",
		SkipHeader: true,
	}
}

// importResult holds the result of an import operation.
type importResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// importVocab imports vocab items from an Excel or CSV file. Rows that fail
// validation are reported in the result and skipped; a file-level failure
// aborts the import.
func importVocab(ctx context.Context, vocabStore store.VocabStore, opts importOptions) (*importResult, error) {
	rows, err := readRows(opts)
	if err != nil {
		return nil, err
	}

	result := &importResult{
		Errors: make([]string, 0),
	}

	start := 0
	if opts.SkipHeader && len(rows) > 0 {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		result.TotalProcessed++

		item := itemFromRow(row)
		if err := item.Validate(); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		if opts.DryRun {
			result.Created++
			continue
		}

		if err := vocabStore.CreateVocabItem(ctx, item); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Created++
	}

	return result, nil
}

// itemFromRow maps one spreadsheet row onto a VocabItem.
// Column order: infinitive, part of speech, known language code, learning
// language code, hint, user notes. Trailing columns may be absent.
func itemFromRow(row []string) *domain.VocabItem {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	return &domain.VocabItem{
		Infinitive:       col(0),
		PartOfSpeech:     col(1),
		KnownLangCode:    col(2),
		LearningLangCode: col(3),
		Hint:             col(4),
		UserNotes:        col(5),
	}
}

// readRows loads the raw cell data from the configured file, dispatching on
// the file extension.
func readRows(opts importOptions) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(opts.FilePath)) {
	case ".csv":
		return readCSV(opts.FilePath)
	case ".xlsx":
		return readExcel(opts.FilePath, opts.SheetName)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .xlsx or .csv", filepath.Ext(opts.FilePath))
	}
}

// readExcel reads all rows from one sheet of an Excel file.
func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// readCSV reads all records from a CSV file. Ragged rows are allowed; the
// row mapper tolerates missing trailing columns.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}
