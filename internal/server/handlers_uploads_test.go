package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/checker"
)

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestProfileImageUploadReturnsDataURI(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	body, contentType := multipartBody(t, "image", "avatar.png", testPNG(t))
	req := httptest.NewRequest("POST", "/uploads/profile-image", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProfileImageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.DataURI, "data:image/png;base64,"))
}

func TestProfileImageUploadRejectsNonImage(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	body, contentType := multipartBody(t, "image", "avatar.png", []byte("plain text, not an image"))
	req := httptest.NewRequest("POST", "/uploads/profile-image", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileImageUploadRejectsMissingFile(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	body, contentType := multipartBody(t, "wrong_field", "avatar.png", testPNG(t))
	req := httptest.NewRequest("POST", "/uploads/profile-image", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckerAnalyzeReturnsReport(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	body, contentType := multipartBody(t, "document", "resume.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest("POST", "/checker/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var report checker.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 78, report.OverallScore)
	assert.Len(t, report.Categories, 6)
}

func TestCheckerAnalyzeRejectsUnsupportedExtension(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	body, contentType := multipartBody(t, "document", "resume.txt", []byte("plain text"))
	req := httptest.NewRequest("POST", "/checker/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}
