package user

const (
	userColumns = `id, email, name, password_hash, password_salt, role, is_active, created_at, updated_at`

	InsertUser = `
		INSERT INTO users (id, email, name, password_hash, password_salt, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	UpdateUserByID = `
		UPDATE users
		SET email = $1,
		    name = $2,
		    updated_at = now()
		WHERE id = $3
		RETURNING ` + userColumns

	UpdatePasswordByID = `
		UPDATE users
		SET password_hash = $1,
		    password_salt = $2,
		    updated_at = now()
		WHERE id = $3
		RETURNING ` + userColumns

	SetActiveByID = `
		UPDATE users
		SET is_active = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns

	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING ` + userColumns

	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1)`
)
