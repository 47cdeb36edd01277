package file

import (
	"account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
)

func ToResponseFile(f *file.File) File {
	return File{
		ID:          f.ID,
		Label:       f.Label,
		FileType:    string(f.FileType),
		OwnerType:   string(f.OwnerType),
		OwnerID:     f.OwnerID,
		MimeType:    f.MimeType,
		SizeBytes:   f.SizeBytes,
		DownloadURL: f.DownloadURL,
		CreatedAt:   f.CreatedAt,
	}
}

func ToResponseFiles(fs file.Files) Files {
	out := make(Files, len(fs))
	for idx, f := range fs {
		out[idx] = ToResponseFile(f)
	}

	return out
}

func ToPageResponse(res *query.Result[*file.File]) PageResponse {
	return PageResponse{
		Data:       ToResponseFiles(res.Items),
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages(),
	}
}
