package models

import (
	"time"

	"github.com/tabledesk/tabledesk-backend/pkg/enums"
)

// User represents a registered account: customer, manager, or admin.
type User struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"type:text;not null"`
	Email       string     `gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Password    string     `gorm:"column:password;not null"`
	Role        enums.Role `gorm:"type:text;not null;default:customer"`
	ContactInfo *string    `gorm:"column:contact_info"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table name GORM uses.
func (User) TableName() string {
	return "users"
}
