package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			username,
			password
		) VALUES (
			:username,
			:password
		)
		RETURNING id
	`

	queryGetByUsername = `
		SELECT
			id,
			username,
			password
		FROM users
		WHERE username = :username
	`
)
