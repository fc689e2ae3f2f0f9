package checker

// UploadError indicates an uploaded document was rejected before analysis
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}
