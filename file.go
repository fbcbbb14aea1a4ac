package gemchat

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the largest document accepted for upload.
// Larger files are rejected locally before any network call.
const MaxUploadBytes = 20 << 20 // 20 MB

// FileRef is an opaque reference to a document already uploaded to the
// remote service. Handle and URI come from the upload response;
// DisplayName is the original filename, kept for display only, and may
// be empty when the source had no name.
type FileRef struct {
	Handle      string
	URI         string
	MIMEType    string
	DisplayName string
	SizeBytes   int64
}

// Label returns the display name, falling back for unnamed files.
func (f FileRef) Label() string {
	if f.DisplayName == "" {
		return "unnamed file"
	}
	return f.DisplayName
}

// mimeTypes maps accepted document extensions to their MIME types.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// MIMETypeFor returns the MIME type for an accepted document filename,
// or empty string when the extension is not supported.
func MIMETypeFor(name string) string {
	return mimeTypes[strings.ToLower(filepath.Ext(name))]
}

// ValidateUpload checks filename and size against the local upload
// constraints. It runs before any network call.
func ValidateUpload(name string, size int64) error {
	if MIMETypeFor(name) == "" {
		return fmt.Errorf("%s: %w", name, ErrFileType)
	}
	if size > MaxUploadBytes {
		return fmt.Errorf("%s is %.2f MB, limit is %d MB: %w",
			name, float64(size)/(1<<20), MaxUploadBytes>>20, ErrFileTooLarge)
	}
	return nil
}

// UploadTo validates and uploads a document, then records the returned
// handle on the session. On any failure the session is left unchanged.
func UploadTo(ctx context.Context, u Uploader, s *Session, r io.Reader, name string, size int64) (FileRef, error) {
	if err := ValidateUpload(name, size); err != nil {
		return FileRef{}, err
	}
	ref, err := u.Upload(ctx, r, name, size)
	if err != nil {
		return FileRef{}, err
	}
	s.AddFile(ref)
	return ref, nil
}
