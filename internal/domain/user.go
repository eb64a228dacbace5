package domain

import "time"

type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleOwner UserRole = "owner"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:guest"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
