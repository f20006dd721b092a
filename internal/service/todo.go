package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kasim110/todo-service/internal/models"
	"github.com/kasim110/todo-service/internal/repository"
)

var ErrTodoNotFound = errors.New("todo item not found")

// TodoService handles todo item CRUD. Access is not scoped by owner:
// any caller that passed the bearer gate may touch any item.
type TodoService interface {
	Create(ctx context.Context, title, description string, userID int64) (*models.TodoItem, error)
	Get(ctx context.Context, id int64) (*models.TodoItem, error)
	List(ctx context.Context) ([]models.TodoItem, error)
	Update(ctx context.Context, id int64, title, description string) error
	Delete(ctx context.Context, id int64) error
}

type todoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(todoRepo repository.TodoRepository) TodoService {
	return &todoService{todoRepo: todoRepo}
}

func (s *todoService) Create(ctx context.Context, title, description string, userID int64) (*models.TodoItem, error) {
	item := &models.TodoItem{
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	if err := s.todoRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *todoService) Get(ctx context.Context, id int64) (*models.TodoItem, error) {
	item, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *todoService) List(ctx context.Context) ([]models.TodoItem, error) {
	return s.todoRepo.FindAll(ctx)
}

// Update changes title and description only; id, user_id and created_at
// are left untouched.
func (s *todoService) Update(ctx context.Context, id int64, title, description string) error {
	item, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return err
	}

	item.Title = title
	item.Description = description
	return s.todoRepo.Update(ctx, item)
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	item, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return s.todoRepo.Delete(ctx, item)
}
