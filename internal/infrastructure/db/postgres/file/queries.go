package file

const (
	fileColumns = `id, label, storage_path, download_url, file_type, owner_type, owner_id, mime_type, size_bytes, created_at, updated_at`

	InsertFile = `
		INSERT INTO files (id, label, storage_path, download_url, file_type, owner_type, owner_id, mime_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + fileColumns

	SelectCurrentFile = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE owner_type = $1 AND owner_id = $2 AND file_type = $3`

	DeleteFileByID = `
		DELETE FROM files
		WHERE id = $1
		RETURNING ` + fileColumns

	DeleteFilesByOwner = `
		DELETE FROM files
		WHERE owner_type = $1 AND owner_id = $2
		RETURNING ` + fileColumns
)
