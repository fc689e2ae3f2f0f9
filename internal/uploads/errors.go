package uploads

// ImageError indicates a profile image upload was rejected
type ImageError struct {
	Message string
	Cause   error
}

func (e *ImageError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ImageError) Unwrap() error {
	return e.Cause
}
