package file

import (
	domain "account-manager-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	return &domain.File{
		ID:          model.ID,
		Label:       model.Label,
		StoragePath: model.StoragePath,
		DownloadURL: model.DownloadURL,
		FileType:    domain.Type(model.FileType),
		OwnerType:   domain.OwnerType(model.OwnerType),
		OwnerID:     model.OwnerID,
		MimeType:    model.MimeType,
		SizeBytes:   model.SizeBytes,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models []*File) domain.Files {
	fs := make(domain.Files, len(models))
	for idx, f := range models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
