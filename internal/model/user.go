package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents a staff account. Password always holds a bcrypt hash.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role         string `gorm:"type:varchar(50)" json:"role"`
	CreatedOn    string `gorm:"type:varchar(19);not null" json:"created_on"` // local time, YYYY-MM-DD HH:MM:SS
	TokenVersion string `gorm:"type:varchar(64);default:''" json:"-"`        // rotated on logout to revoke sessions
}

// dummyHash is compared against when no user matches, so that unknown
// usernames cost the same as wrong passwords.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cafe-inventory-dummy"), bcrypt.DefaultCost)

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash.
// A nil user still burns one bcrypt comparison.
func (u *User) CheckPassword(password string) bool {
	if u == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// RotateTokenVersion invalidates every session token issued so far.
func (u *User) RotateTokenVersion() string {
	u.TokenVersion = uuid.NewString()
	return u.TokenVersion
}

// UserOption is the slim projection used by transaction forms
type UserOption struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
