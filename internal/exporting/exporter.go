// Package exporting captures rendered surfaces as raster images wrapped in
// single-page PDF documents.
package exporting

import (
	"context"
	"log"
	"os"
	"path/filepath"
)

// ExportScale is the raster scale factor, doubled for print sharpness.
const ExportScale = 2.0

// DefaultFilename is used when the caller does not name the export.
const DefaultFilename = "resume.pdf"

// Exporter turns registered surfaces into single-page PDF files. The boolean
// returned by ExportToPDF is its entire contract: surface-not-found,
// rasterization failure and PDF-assembly failure all collapse to false, and
// no failure escapes the exporter's boundary.
type Exporter struct {
	registry   *Registry
	rasterizer Rasterizer
	outputDir  string
}

// New creates an exporter writing PDFs under outputDir.
func New(registry *Registry, rasterizer Rasterizer, outputDir string) *Exporter {
	return &Exporter{
		registry:   registry,
		rasterizer: rasterizer,
		outputDir:  outputDir,
	}
}

// OutputDir returns the directory exported PDFs are written to.
func (e *Exporter) OutputDir() string {
	return e.outputDir
}

// ExportToPDF rasterizes the surface and writes a single-page PDF named
// filename under the exporter's output directory. Returns true only when the
// file has been written.
func (e *Exporter) ExportToPDF(ctx context.Context, surfaceID, filename string) bool {
	pdfBytes, exported := e.Export(ctx, surfaceID)
	if !exported {
		return false
	}

	if filename == "" {
		filename = DefaultFilename
	}
	path := filepath.Join(e.outputDir, filepath.Base(filename))

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		log.Printf("export: failed to create output directory: %v", err)
		return false
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		log.Printf("export: failed to write %s: %v", path, err)
		return false
	}

	log.Printf("export: wrote %s (%d bytes)", path, len(pdfBytes))
	return true
}

// Export rasterizes the surface and returns the assembled PDF bytes. The
// boolean follows the same collapse-all-failures contract as ExportToPDF.
func (e *Exporter) Export(ctx context.Context, surfaceID string) (pdfBytes []byte, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("export: panic during export of surface %s: %v", surfaceID, r)
			pdfBytes, ok = nil, false
		}
	}()

	doc, found := e.registry.Lookup(surfaceID)
	if !found {
		log.Printf("export: surface not found: %s", surfaceID)
		return nil, false
	}

	png, err := e.rasterizer.Capture(ctx, doc.HTML, doc.Width, doc.Height, ExportScale)
	if err != nil {
		log.Printf("export: rasterization failed for surface %s: %v", surfaceID, err)
		return nil, false
	}

	assembled, err := assemblePDF(png, doc.Width, doc.Height)
	if err != nil {
		log.Printf("export: PDF assembly failed for surface %s: %v", surfaceID, err)
		return nil, false
	}

	return assembled, true
}
