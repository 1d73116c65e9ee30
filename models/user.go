package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents an account allowed to access the tree.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email" gorm:"index"`
	PasswordHash string    `json:"-" gorm:"not null"` // "-" means don't include in JSON responses
	Role         int       `json:"role"`              // 0 = guest, 1 = member, 2 = editor, 3 = owner
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "users"
}

// SetPassword hashes the given password and sets it on the user model.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the given password matches the user's hashed password.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
