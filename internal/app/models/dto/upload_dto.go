package dto

import "time"

// UploadResponse describes a stored photo upload
type UploadResponse struct {
	ID           int64     `json:"id"`
	FileName     string    `json:"fileName"`
	FileURL      string    `json:"fileUrl"`
	FileSize     int64     `json:"fileSize"`
	FileType     string    `json:"fileType"`
	UploaderName string    `json:"uploaderName,omitempty"`
	Caption      string    `json:"caption,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UploadListResponse is one page of uploads
type UploadListResponse struct {
	Uploads    []UploadResponse `json:"uploads"`
	Pagination PaginationInfo   `json:"pagination"`
}
