package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxImageSize is the largest accepted upload, 10 MiB.
const MaxImageSize int64 = 10 * 1024 * 1024

var (
	allowedImageTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/jpg":  {},
		"image/png":  {},
		"image/gif":  {},
		"image/webp": {},
	}
	allowedImageExtensions = map[string]struct{}{
		".jpg":  {},
		".jpeg": {},
		".png":  {},
		".gif":  {},
		".webp": {},
	}
)

// FileMeta is the metadata of an uploaded file as reported by the client.
type FileMeta struct {
	Filename string
	MimeType string
	Size     int64
}

// FileMetaFromHeader extracts FileMeta from a multipart header; nil stays nil.
func FileMetaFromHeader(header *multipart.FileHeader) *FileMeta {
	if header == nil {
		return nil
	}
	return &FileMeta{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
	}
}

// FileResult reports whether an upload passed validation and why not.
type FileResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateImageFile checks presence, MIME type, extension and size in that
// order and reports the first failure.
func ValidateImageFile(file *FileMeta) FileResult {
	if file == nil {
		return FileResult{Error: "No file provided"}
	}

	if _, ok := allowedImageTypes[strings.ToLower(file.MimeType)]; !ok {
		return FileResult{Error: "Invalid file type. Only JPEG, PNG, GIF and WebP images are allowed"}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return FileResult{Error: fmt.Sprintf("Invalid file extension %q. Only .jpg, .jpeg, .png, .gif and .webp are allowed", ext)}
	}

	if file.Size > MaxImageSize {
		return FileResult{Error: "File size exceeds the 10MB limit"}
	}

	return FileResult{Valid: true}
}
