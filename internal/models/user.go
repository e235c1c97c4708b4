package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a registered account. Participants in a meeting always map back to
// a User row; display names shown in a meeting are the account usernames.
type User struct {
	gorm.Model

	Username     string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`
}

// SetPassword hashes the plaintext password with bcrypt and stores the hash.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
