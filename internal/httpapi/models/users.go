package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles assigned to accounts. Clients can buy and rent, workers administer
// the catalog, admins can additionally delete other users' trade records.
const (
	RoleClient = "client"
	RoleWorker = "worker"
	RoleAdmin  = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `gorm:"default:'client';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

// IsStaff reports whether the user may administer the catalog.
func (user *User) IsStaff() bool {
	return user.Role == RoleWorker || user.Role == RoleAdmin
}

func (User) TableName() string {
	return "users"
}
