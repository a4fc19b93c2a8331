package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, username, password, created_at, updated_at)
VALUES (:id, :email, :username, :password, :created_at, :updated_at)`

	queryGetByID = `
SELECT id, email, username, password, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, username, password, created_at, updated_at
FROM users
    WHERE email = :email`
)
