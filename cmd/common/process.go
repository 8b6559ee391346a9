// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"adeyosola/bank-wrapped/internal/classify"
	"adeyosola/bank-wrapped/internal/config"
	"adeyosola/bank-wrapped/internal/fileutils"
	"adeyosola/bank-wrapped/internal/logging"
	"adeyosola/bank-wrapped/internal/models"
	"adeyosola/bank-wrapped/internal/statement"
)

// ParseStatement validates (when asked) and parses a statement file,
// terminating the command on any failure. Every subcommand starts here.
func ParseStatement(inputFile string, validate bool, log logging.Logger) *models.ParsedStatement {
	if inputFile == "" {
		log.Fatal("No input file specified, use --input")
	}

	if validate {
		log.Info("Validating upload...")
		if err := fileutils.ValidateUpload(inputFile); err != nil {
			log.WithError(err).Fatal("Error validating file")
		}
		log.Info("Validation successful.")
	}

	cfg := config.GetGlobalConfig()
	opts := []statement.Option{statement.WithMaxRows(cfg.Parser.MaxRows)}
	if classifier := buildClassifier(cfg, log); classifier != nil {
		opts = append(opts, statement.WithClassifier(classifier))
	}

	parsed, err := statement.NewParser(opts...).ParseFile(context.Background(), inputFile)
	if err != nil {
		log.WithError(err).Fatal("Error parsing statement")
	}
	return parsed
}

// buildClassifier returns a classifier extended with the user's keyword
// rules when a rules file is configured, nil otherwise (the parser then
// falls back to the built-in rules).
func buildClassifier(cfg *config.Config, log logging.Logger) *classify.Classifier {
	if cfg.Classify.RulesFile == "" {
		return nil
	}
	ruleSet, err := classify.LoadRuleSet(cfg.Classify.RulesFile)
	if err != nil {
		log.WithError(err).Warn("Failed to load classification rules",
			logging.F(logging.FieldFile, cfg.Classify.RulesFile))
		return nil
	}
	log.WithField(logging.FieldFile, cfg.Classify.RulesFile).Debug("Loaded custom classification rules")
	return classify.NewWithRules(ruleSet)
}

// WriteJSON marshals v with indentation and writes it to outputFile, or
// to stdout when outputFile is empty.
func WriteJSON(v interface{}, outputFile string, log logging.Logger) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	data = append(data, '\n')

	if outputFile == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("error writing JSON to stdout: %w", err)
		}
		return nil
	}

	if err := fileutils.WriteFile(outputFile, data, 0o600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	log.WithField(logging.FieldOutputFile, outputFile).Info("Wrote JSON output")
	return nil
}
