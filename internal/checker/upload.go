package checker

import (
	"path/filepath"
	"strings"
)

// MaxUploadSize caps accepted documents at 5MB.
const MaxUploadSize = 5 << 20

// acceptedExtensions are the document types the checker admits. Acceptance
// is judged by filename extension alone; content sniffing is deliberately
// out of scope here.
var acceptedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Upload is a candidate document submitted for analysis.
type Upload struct {
	Filename string
	Size     int64
	Data     []byte
}

// ValidateUpload checks the document's type and size before analysis.
func ValidateUpload(upload Upload) error {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !acceptedExtensions[ext] {
		return &UploadError{Message: "unsupported file type, expected .pdf, .doc or .docx"}
	}
	// The declared size comes from the client; the byte slice is what we
	// actually hold, so both are checked.
	if upload.Size > MaxUploadSize || int64(len(upload.Data)) > MaxUploadSize {
		return &UploadError{Message: "file exceeds the 5MB size limit"}
	}
	return nil
}
