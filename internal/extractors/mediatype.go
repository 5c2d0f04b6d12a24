package extractors

import (
	"path/filepath"
	"strings"
)

// Media types accepted for upload.
const (
	MediaTypePDF       = "application/pdf"
	MediaTypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeDOC       = "application/msword"
	MediaTypePlainText = "text/plain"
)

// extensionMediaTypes maps file extensions to upload media types.
var extensionMediaTypes = map[string]string{
	".pdf":  MediaTypePDF,
	".docx": MediaTypeDOCX,
	".doc":  MediaTypeDOC,
	".txt":  MediaTypePlainText,
	".text": MediaTypePlainText,
	".md":   MediaTypePlainText,
}

// DetectMediaType guesses the media type of a file from its extension.
// Returns an empty string for unknown extensions.
func DetectMediaType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return extensionMediaTypes[ext]
}
