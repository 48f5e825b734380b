package authRepository

const (
	queryGetUserByEmail = `
		SELECT id, email, password, company, role, created_at, updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByID = `
		SELECT id, email, password, company, role, created_at, updated_at
		FROM users
		WHERE id = :id
	`

	queryUpdateUserPassword = `
		UPDATE users
		SET password   = :password,
		    updated_at = :updated_at
		WHERE id = :id
	`
)
