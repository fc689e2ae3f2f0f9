package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

var scoreRecordPath string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume record for ATS compatibility",
	Long:  `Read a resume record from a JSON file and print its compatibility score, issues and suggestions.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreRecordPath, "record", "", "Path to resume record JSON file (required)")
	_ = scoreCmd.MarkFlagRequired("record")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(scoreRecordPath)
	if err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}

	if err := schemas.ValidateRecordJSON(string(data)); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse record: %w", err)
	}

	result := scoring.Score(&record)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
