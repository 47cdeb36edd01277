package file

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeAvatar     Type = "AVATAR"
	TypeDocument   Type = "DOCUMENT"
	TypeAttachment Type = "ATTACHMENT"
)

func (t Type) Valid() bool {
	return t == TypeAvatar || t == TypeDocument || t == TypeAttachment
}

// OwnerType names the kind of entity a file belongs to. Accounts are
// the only owner today; the tuple key keeps the door open for others.
type OwnerType string

const OwnerUser OwnerType = "USER"

type (
	// File is uploaded-artifact metadata. At most one current file
	// exists per (OwnerType, OwnerID, FileType) tuple; replacing an
	// upload removes the prior record and its backing object.
	File struct {
		ID          uuid.UUID
		Label       string
		StoragePath string
		DownloadURL string
		FileType    Type
		OwnerType   OwnerType
		OwnerID     uuid.UUID
		MimeType    string
		SizeBytes   int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Files []*File
)
