// Package repository provides data access layer for the todo service.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kasim110/todo-service/internal/models"
)

// TodoRepository defines the interface for todo item data operations.
type TodoRepository interface {
	Create(ctx context.Context, item *models.TodoItem) error
	FindByID(ctx context.Context, id int64) (*models.TodoItem, error)
	FindAll(ctx context.Context) ([]models.TodoItem, error)
	Update(ctx context.Context, item *models.TodoItem) error
	Delete(ctx context.Context, item *models.TodoItem) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository instance.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

// Mutating operations run inside a transaction; gorm rolls back
// automatically when the callback returns an error.

func (r *todoRepository) Create(ctx context.Context, item *models.TodoItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create todo item: %w", err)
	}
	return nil
}

func (r *todoRepository) FindByID(ctx context.Context, id int64) (*models.TodoItem, error) {
	var item models.TodoItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find todo item by id %d: %w", id, err)
	}
	return &item, nil
}

func (r *todoRepository) FindAll(ctx context.Context) ([]models.TodoItem, error) {
	var items []models.TodoItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list todo items: %w", err)
	}
	return items, nil
}

func (r *todoRepository) Update(ctx context.Context, item *models.TodoItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(item).Select("title", "description").Updates(map[string]interface{}{
			"title":       item.Title,
			"description": item.Description,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update todo item id %d: %w", item.ID, err)
	}
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, item *models.TodoItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(item).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete todo item id %d: %w", item.ID, err)
	}
	return nil
}
