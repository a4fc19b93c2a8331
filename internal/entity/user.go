package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserLoginData is the authenticated caller, as read from the access token.
type UserLoginData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
