package fileutils

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"adeyosola/bank-wrapped/internal/parsererror"
)

// MaxUploadBytes is the hard cap on statement file size.
const MaxUploadBytes = 10 * 1024 * 1024

// GridExtensions are the statement formats that can be loaded as a cell grid.
var GridExtensions = []string{".csv", ".xlsx", ".xls"}

// ValidateUpload rejects a statement file before any parsing is attempted:
// missing files, files over the size cap, PDF exports (recognized but not
// handled), and unknown extensions.
func ValidateUpload(filePath string) error {
	if !FileExists(filePath) {
		return &parsererror.ValidationError{FilePath: filePath, Reason: "file does not exist"}
	}

	size, err := FileSize(filePath)
	if err != nil {
		return &parsererror.ValidationError{FilePath: filePath, Reason: err.Error()}
	}
	if size > MaxUploadBytes {
		return &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   fmt.Sprintf("file is %d bytes, limit is %d", size, MaxUploadBytes),
		}
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".pdf" {
		return &parsererror.UnsupportedFormatError{
			FilePath: filePath,
			Format:   "pdf",
			Hint:     "export the statement as CSV or Excel instead",
		}
	}
	for _, known := range GridExtensions {
		if ext == known {
			return nil
		}
	}
	return &parsererror.UnsupportedFormatError{FilePath: filePath, Format: strings.TrimPrefix(ext, ".")}
}

// LoadGrid reads a statement file into a raw cell grid. The format is
// chosen by extension; rows keep their original cell values as strings so
// the header detection tiers can inspect them.
func LoadGrid(filePath string) ([][]string, error) {
	if err := ValidateUpload(filePath); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".csv":
		return loadCSVGrid(filePath)
	case ".xlsx", ".xls":
		return loadExcelGrid(filePath)
	default:
		return nil, &parsererror.UnsupportedFormatError{FilePath: filePath, Format: strings.TrimPrefix(ext, ".")}
	}
}

// loadCSVGrid reads a CSV file without enforcing a uniform column count;
// statement exports routinely mix metadata rows with transaction rows.
func loadCSVGrid(filePath string) ([][]string, error) {
	file, err := ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(string(file)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV grid from %s: %w", filePath, err)
	}

	log.WithFields(logrus.Fields{"file_path": filePath, "rows": len(rows)}).Debug("Loaded CSV grid")
	return rows, nil
}

// loadExcelGrid reads the first sheet of a workbook into a cell grid.
func loadExcelGrid(filePath string) ([][]string, error) {
	workbook, err := excelize.OpenFile(filePath, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := workbook.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Failed to close workbook")
		}
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filePath)
	}

	rows, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return rows, nil
}
