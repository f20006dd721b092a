// Package models contains data models for the todo service.
package models

import "time"

// TodoItem represents a single to-do entry.
//
// UserID records which user the item was created for. It is not a foreign
// key and is never checked against the users table; any authenticated caller
// may read or mutate any item.
type TodoItem struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;index"`
	Description string    `json:"description" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UserID      int64     `json:"user_id"`
}

// TableName returns the database table name for the TodoItem model.
func (TodoItem) TableName() string {
	return "todo_items"
}
