package server

import (
	"io"
	"net/http"

	"github.com/jonathan/resume-builder/internal/checker"
	"github.com/jonathan/resume-builder/internal/uploads"
)

// ProfileImageResponse carries the encoded image ready for embedding.
type ProfileImageResponse struct {
	DataURI string `json:"data_uri"`
}

// handleProfileImageUpload accepts a multipart image and returns it as a
// base64 data URI for the record's profile image field.
func (s *Server) handleProfileImageUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploads.MaxImageSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing image file: "+err.Error())
		return
	}
	defer file.Close()

	// Reject on the declared size before buffering anything.
	if header.Size > uploads.MaxImageSize {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Image exceeds the 5MB size limit")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, uploads.MaxImageSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read image: "+err.Error())
		return
	}

	dataURI, err := uploads.EncodeProfileImage(data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ProfileImageResponse{DataURI: dataURI})
}

// handleCheckerAnalyze accepts a multipart resume document and returns the
// compatibility report.
func (s *Server) handleCheckerAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(checker.MaxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing document file: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, checker.MaxUploadSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read document: "+err.Error())
		return
	}

	report, err := s.analyzer.Analyze(checker.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Data:     data,
	})
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
