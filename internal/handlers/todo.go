package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasim110/todo-service/internal/service"
)

// TodoHandler handles todo item HTTP requests. All routes sit behind the
// bearer gate; none of them look at who the caller is.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new TodoHandler instance.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents the create request payload.
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
}

// UpdateTodoRequest represents the update request payload.
// Only title and description are mutable.
type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CreateTodoResponse is returned after successful creation.
type CreateTodoResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Create godoc
// @Summary Create a todo item
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo item"
// @Success 201 {object} CreateTodoResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.todoService.Create(c.Request.Context(), req.Title, req.Description, req.UserID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, CreateTodoResponse{ID: item.ID, Title: item.Title})
}

// Get godoc
// @Summary Get a todo item by ID
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Param todo_id path int true "Todo item ID"
// @Success 200 {object} models.TodoItem
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /todos/{todo_id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	item, err := h.todoService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			RespondError(c, http.StatusNotFound, "Todo item not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, item)
}

// List godoc
// @Summary List all todo items
// @Description Returns every item regardless of owner
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.TodoItem
// @Failure 401 {object} map[string]string
// @Router /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	items, err := h.todoService.List(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, items)
}

// Update godoc
// @Summary Update a todo item's title and description
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param todo_id path int true "Todo item ID"
// @Param request body UpdateTodoRequest true "New title and description"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /todos/update/{todo_id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.todoService.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			RespondError(c, http.StatusNotFound, "Todo item not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo item updated successfully"})
}

// Delete godoc
// @Summary Delete a todo item
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Param todo_id path int true "Todo item ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /todos/delete/{todo_id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	err := h.todoService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			RespondError(c, http.StatusNotFound, "Todo item not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo item deleted successfully"})
}

func parseTodoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("todo_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid todo id")
		return 0, false
	}
	return id, true
}
