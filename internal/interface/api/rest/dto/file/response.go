package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID          uuid.UUID `json:"id"`
		Label       string    `json:"label"`
		FileType    string    `json:"file_type"`
		OwnerType   string    `json:"owner_type"`
		OwnerID     uuid.UUID `json:"owner_id"`
		MimeType    string    `json:"mime_type"`
		SizeBytes   int64     `json:"size_bytes"`
		DownloadURL string    `json:"download_url"`
		CreatedAt   time.Time `json:"created_at"`
	}
	Files []File

	PageResponse struct {
		Data       Files `json:"data"`
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalPages int64 `json:"total_pages"`
	}
)
