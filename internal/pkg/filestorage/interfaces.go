package filestorage

import (
	"mime/multipart"
	"time"

	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// StoredFile describes a photo kept by the intake storage
type StoredFile struct {
	ID           int64     // Sequential index assigned on save
	FileName     string    // Sanitized original filename
	StoredName   string    // Unique name on disk
	URL          string    // Where the file is served from
	FileSize     int64     // Size in bytes
	MimeType     string    // MIME type reported by the client
	UploaderName string    // Sanitized guest name, may be empty
	Caption      string    // Sanitized caption, may be empty
	CreatedAt    time.Time // Save time
}

// UploadMeta is the guest-supplied text sent along with a photo
type UploadMeta struct {
	UploaderName string
	Caption      string
}

// FileStorage defines the photo intake operations
type FileStorage interface {
	// Save stores the uploaded file under a unique name
	Save(fileHeader *multipart.FileHeader, meta UploadMeta) (*StoredFile, error)

	// Get returns the file registered under id
	Get(id int64) (*StoredFile, error)

	// List returns one page of files, newest first, and the total count
	List(page validation.Pagination) ([]StoredFile, int, error)

	// Delete removes the file and its index entry
	Delete(id int64) error

	// FullPath returns the filesystem path of a stored file
	FullPath(file *StoredFile) string
}
