// Package common provides shared CSV plumbing used by the export path.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"adeyosola/bank-wrapped/internal/models"
)

var log = logrus.New()

// Global CSV delimiter - can be configured via environment variable
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		// Use first rune only
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// WriteTransactionsToCSV writes transactions to a CSV file in the
// normalized export format: one row per transaction with resolved
// category, merchant and recipient columns.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]models.TransactionCSVRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, tx.ToCSVRow())
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}
