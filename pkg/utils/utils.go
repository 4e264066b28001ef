package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ImageToDataURI wraps encoded image bytes in a data: URI so the web UI
// can drop them straight into an <img> src attribute.
func ImageToDataURI(imgBytes []byte, format string) (string, error) {
	contentType := ""

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		contentType = "image/png"
	case "jpg", "jpeg":
		contentType = "image/jpeg"
	default:
		return "", fmt.Errorf("unsupported image format: %s", format)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(imgBytes), nil
}
