// Package models contains data models for the todo service.
package models

// User represents a registered account in the system.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
