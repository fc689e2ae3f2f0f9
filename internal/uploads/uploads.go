// Package uploads converts profile image uploads into embeddable data URIs.
package uploads

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// MaxImageSize caps profile images at 5MB.
const MaxImageSize = 5 << 20

// EncodeProfileImage validates the image bytes and returns a base64 data URI
// suitable for direct embedding in a rendered page's img src. The MIME type
// is sniffed from the content rather than trusted from the client.
func EncodeProfileImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ImageError{Message: "empty image upload"}
	}
	if len(data) > MaxImageSize {
		return "", &ImageError{Message: "image exceeds the 5MB size limit"}
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", &ImageError{Message: "uploaded file is not an image"}
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return "data:" + contentType + ";base64," + encoded, nil
}
