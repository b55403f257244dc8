package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Hash password. Lives here rather than in utils so that models does not
// import utils, which imports store, which imports models.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// OwnerKey is the canonical owner key stamped on every record the user
// creates. Records written before the key scheme settled on user ids carry the
// email instead; those are restamped at login, never read through a fallback.
func (u *User) OwnerKey() string {
	return u.ID.String()
}

// LegacyOwnerKey is the pre-migration owner key (the email address).
func (u *User) LegacyOwnerKey() string {
	return u.Email
}
