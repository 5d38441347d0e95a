package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the operator profile written once at registration.
// Every load is owned by exactly one user.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name     string    `gorm:"not null" json:"nome"`
	Email    string    `gorm:"unique;not null" json:"email"`
	Password string    `json:"-"` // Never include in JSON responses

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"criadoEm"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"atualizadoEm"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
