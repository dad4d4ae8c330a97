package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/logger"
	"github.com/yigit/weddingsite/internal/pkg/sanitize"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// maxTextLength bounds uploader names and captions
const maxTextLength = 200

// LocalStorage keeps uploaded photos on the local filesystem with an
// in-memory numeric index.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files

	mu     sync.RWMutex
	nextID int64
	files  map[int64]*StoredFile
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance.
// basePath is created when missing; baseURL is prepended to returned file URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		files:    make(map[int64]*StoredFile),
	}, nil
}

// Save stores an uploaded file under a uuid name and registers it in the index
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, meta UploadMeta) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	cleanName := sanitize.SanitizeFilename(fileHeader.Filename)
	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(cleanName))
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	ls.mu.Lock()
	ls.nextID++
	stored := &StoredFile{
		ID:           ls.nextID,
		FileName:     cleanName,
		StoredName:   storedName,
		URL:          ls.baseURL + "/" + storedName,
		FileSize:     written,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		UploaderName: validation.SanitizeString(meta.UploaderName, maxTextLength),
		Caption:      validation.SanitizeString(meta.Caption, maxTextLength),
		CreatedAt:    time.Now().UTC(),
	}
	ls.files[stored.ID] = stored
	ls.mu.Unlock()

	logger.Info().Int64("id", stored.ID).Str("filename", cleanName).Str("saved_as", storedName).Msg("File saved successfully")
	copied := *stored
	return &copied, nil
}

// Get returns the file registered under id
func (ls *LocalStorage) Get(id int64) (*StoredFile, error) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	stored, ok := ls.files[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("upload %d not found", id))
	}
	copied := *stored
	return &copied, nil
}

// List returns one page of files, newest first
func (ls *LocalStorage) List(page validation.Pagination) ([]StoredFile, int, error) {
	ls.mu.RLock()
	all := make([]StoredFile, 0, len(ls.files))
	for _, stored := range ls.files {
		all = append(all, *stored)
	}
	ls.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID > all[j].ID
	})

	total := len(all)
	start := page.Offset()
	if start >= total {
		return []StoredFile{}, total, nil
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

// Delete removes the file from disk and the index.
// A file already missing on disk is not an error.
func (ls *LocalStorage) Delete(id int64) error {
	ls.mu.Lock()
	stored, ok := ls.files[id]
	if ok {
		delete(ls.files, id)
	}
	ls.mu.Unlock()

	if !ok {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("upload %d not found", id))
	}

	physicalPath := ls.FullPath(stored)
	if err := os.Remove(physicalPath); err != nil && !os.IsNotExist(err) {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Int64("id", id).Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// FullPath returns the filesystem path of a stored file
func (ls *LocalStorage) FullPath(file *StoredFile) string {
	return filepath.Join(ls.basePath, filepath.Base(file.StoredName))
}
