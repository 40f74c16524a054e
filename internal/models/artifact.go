package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AllowedExtensions lists the document types the analyzer accepts.
// The comparison is case-insensitive and looks at the suffix after the
// last dot only.
var AllowedExtensions = []string{".pdf", ".docx", ".txt"}

// Artifact is the single user-supplied document pending analysis.
type Artifact struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Extension  string    `json:"extension"`
	FilePath   string    `json:"-"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ExtensionOf returns the lower-cased extension of a filename, including
// the leading dot. A name without a dot yields an empty string.
func ExtensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}

// IsAllowedExtension reports whether the filename carries one of the
// supported document extensions.
func IsAllowedExtension(filename string) bool {
	ext := ExtensionOf(filename)
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
