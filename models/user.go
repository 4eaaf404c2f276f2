package models

import (
    "database/sql"
    "time"

    "golang.org/x/crypto/bcrypt"

    "github.com/skyallone/project07/config"
)

type User struct {
    ID           int       `json:"id"`
    Username     string    `json:"username"`
    Email        string    `json:"email"`
    Name         string    `json:"name,omitempty"`
    Phone        string    `json:"phone,omitempty"`
    PasswordHash string    `json:"-"`
    CreatedAt    time.Time `json:"created_at"`
}

func (u *User) SetPassword(password string) error {
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return err
    }
    u.PasswordHash = string(hash)
    return nil
}

func (u *User) CheckPassword(password string) bool {
    return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CreateUser inserts a new user and fills in its generated ID.
func CreateUser(u *User) error {
    return config.DB.QueryRow(
        `INSERT INTO users (username, email, name, phone, password_hash)
         VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
        u.Username, u.Email, nullable(u.Name), nullable(u.Phone), u.PasswordHash,
    ).Scan(&u.ID, &u.CreatedAt)
}

func GetUserByID(id int) (*User, error) {
    return scanUser(config.DB.QueryRow(
        `SELECT id, username, email, COALESCE(name, ''), COALESCE(phone, ''), password_hash, created_at
         FROM users WHERE id = $1`, id))
}

func GetUserByUsername(username string) (*User, error) {
    return scanUser(config.DB.QueryRow(
        `SELECT id, username, email, COALESCE(name, ''), COALESCE(phone, ''), password_hash, created_at
         FROM users WHERE username = $1`, username))
}

func GetUserByEmail(email string) (*User, error) {
    return scanUser(config.DB.QueryRow(
        `SELECT id, username, email, COALESCE(name, ''), COALESCE(phone, ''), password_hash, created_at
         FROM users WHERE email = $1`, email))
}

// UpdateUserProfile updates the mutable profile fields.
func UpdateUserProfile(id int, email, name, phone string) error {
    _, err := config.DB.Exec(
        `UPDATE users SET email = $1, name = $2, phone = $3 WHERE id = $4`,
        email, nullable(name), nullable(phone), id)
    return err
}

func UpdateUserPassword(id int, passwordHash string) error {
    _, err := config.DB.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
    return err
}

func scanUser(row *sql.Row) (*User, error) {
    var u User
    err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Phone, &u.PasswordHash, &u.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

func nullable(s string) sql.NullString {
    return sql.NullString{String: s, Valid: s != ""}
}
