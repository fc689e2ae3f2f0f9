package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeResponse is the session state returned by GET /resumes.
type ResumeResponse struct {
	Record     *types.ResumeRecord `json:"record"`
	TemplateID int                 `json:"template_id"`
	Score      scoring.Result      `json:"score"`
}

// SaveResponse is the acknowledgement for save endpoints.
type SaveResponse struct {
	Saved bool `json:"saved"`
}

// userSession resolves the caller's editing session, hydrating it from the
// database on first access.
func (s *Server) userSession(r *http.Request) (*session.Session, error) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return nil, err
	}

	sess, created := s.sessions.Get(userID)
	if created {
		if err := sess.Hydrate(r.Context()); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// handleGetResume returns the caller's current session state. A user with
// nothing saved gets the blank form defaults.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.userSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume: "+err.Error())
		return
	}

	record, templateID := sess.Snapshot()
	s.jsonResponse(w, http.StatusOK, ResumeResponse{
		Record:     record,
		TemplateID: templateID,
		Score:      scoring.Score(record),
	})
}

// handleUpdateResume replaces the session record and schedules a debounced
// save. The response carries the freshly computed score so the client can
// update its gauge without a second round trip.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	var raw struct {
		Record     json.RawMessage `json:"record"`
		TemplateID int             `json:"template_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(raw.Record) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "record is required")
		return
	}

	if err := schemas.ValidateRecordJSON(string(raw.Record)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid record: "+err.Error())
		return
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(raw.Record, &record); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid record: "+err.Error())
		return
	}

	req := types.SaveResumeRequest{Record: record, TemplateID: raw.TemplateID}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sess, err := s.userSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session: "+err.Error())
		return
	}

	sess.SetRecord(&record, raw.TemplateID)

	s.jsonResponse(w, http.StatusOK, ResumeResponse{
		Record:     &record,
		TemplateID: raw.TemplateID,
		Score:      scoring.Score(&record),
	})
}

// handleSaveResume persists the session immediately. Persistence failures
// are logged and reported in the body, not as an HTTP error; the editing
// session stays valid either way.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.userSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session: "+err.Error())
		return
	}

	saved := true
	if err := sess.Save(r.Context()); err != nil {
		log.Printf("save: manual save failed: %v", err)
		saved = false
	}

	s.jsonResponse(w, http.StatusOK, SaveResponse{Saved: saved})
}
