package user

const (
	SelectUserByUUID = `
		SELECT id, uuid, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE uuid = $1
	`
	SelectUserByEmail = `
		SELECT id, uuid, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	SelectIdByUUID = `SELECT id FROM users WHERE uuid = $1::uuid`
	InsertUser     = `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING
		  id, uuid, email, password_hash, name, created_at, updated_at
	`
	UpdatePasswordByUUID = `
		UPDATE users
		SET password_hash = $1,
		    updated_at = now()
		WHERE uuid = $2
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`

	InsertPasswordReset = `
		INSERT INTO password_resets (token, user_uuid, expires_at)
		VALUES ($1, $2, $3)
	`
	SelectPasswordResetByToken = `
		SELECT token, user_uuid, expires_at
		FROM password_resets
		WHERE token = $1
	`
	DeletePasswordResetByToken = `DELETE FROM password_resets WHERE token = $1`
)
