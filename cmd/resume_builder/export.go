package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/exporting"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	exportRecordPath string
	exportTemplateID int
	exportOutputDir  string
	exportFilename   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a resume record and export it as a single-page PDF",
	Long:  `Read a resume record from a JSON file, render it with the selected template and write a PDF. Requires Chrome/Chromium to be installed.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportRecordPath, "record", "", "Path to resume record JSON file (required)")
	exportCmd.Flags().IntVar(&exportTemplateID, "template", 1, "Template ID (1-4)")
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "exports", "Directory to write the PDF to")
	exportCmd.Flags().StringVar(&exportFilename, "filename", "resume.pdf", "Output PDF filename")
	_ = exportCmd.MarkFlagRequired("record")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportRecordPath)
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

	doc, err := rendering.Render(&record, exportTemplateID)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	registry := exporting.NewRegistry()
	surfaceID := registry.Register(doc)
	exporter := exporting.New(registry, exporting.NewChromeRasterizer(), exportOutputDir)

	if !exporter.ExportToPDF(context.Background(), surfaceID, exportFilename) {
		return fmt.Errorf("export failed, see log output for details")
	}

	fmt.Printf("Exported %s/%s\n", exportOutputDir, exportFilename)
	return nil
}
