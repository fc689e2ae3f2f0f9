package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

// RenderResponse identifies a registered surface and its geometry.
type RenderResponse struct {
	SurfaceID string `json:"surface_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// ExportResponse carries the exporter's boolean contract.
type ExportResponse struct {
	Success bool `json:"success"`
}

// handleScore scores a posted record snapshot. No auth; the scorer is a pure
// function over its input.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var record types.ResumeRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoring.Score(&record))
}

// handleRender renders a record with the requested template and registers
// the result as an exportable surface.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req types.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	doc, err := rendering.Render(&req.Record, req.TemplateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	surfaceID := s.registry.Register(doc)
	s.jsonResponse(w, http.StatusOK, RenderResponse{
		SurfaceID: surfaceID,
		Width:     doc.Width,
		Height:    doc.Height,
	})
}

// handleGetSurface serves the rendered HTML of a registered surface.
func (s *Server) handleGetSurface(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	doc, ok := s.registry.Lookup(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Surface not found: "+id)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.HTML))
}

// handleExport runs the exporter for a surface. The response is HTTP 200
// whether or not the export worked; the success boolean is the contract.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	ok := s.exporter.ExportToPDF(r.Context(), req.SurfaceID, req.Filename)
	s.jsonResponse(w, http.StatusOK, ExportResponse{Success: ok})
}
