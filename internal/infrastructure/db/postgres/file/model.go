package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID          uuid.UUID `db:"id"`
		Label       string    `db:"label"`
		StoragePath string    `db:"storage_path"`
		DownloadURL string    `db:"download_url"`
		FileType    string    `db:"file_type"`
		OwnerType   string    `db:"owner_type"`
		OwnerID     uuid.UUID `db:"owner_id"`
		MimeType    string    `db:"mime_type"`
		SizeBytes   int64     `db:"size_bytes"`

		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	Files []*File
)
