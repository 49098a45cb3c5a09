package models

import "time"

// Roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

var Roles = []string{RoleStudent, RoleInstructor, RoleAdmin}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:64;uniqueIndex;not null"`
	Email     *string   `json:"email" gorm:"size:255;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	FirstName string    `json:"firstName" gorm:"size:100;default:''"`
	LastName  string    `json:"lastName" gorm:"size:100;default:''"`
	Bio       string    `json:"bio" gorm:"type:text"`
	AvatarURL string    `json:"avatarUrl"`
	Role      string    `json:"role" gorm:"size:20;default:'student'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) IsStaff() bool {
	return u.Role == RoleInstructor || u.Role == RoleAdmin
}

// PublicUser is the redacted view of a User shown to other callers.
type PublicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}
