// Package routes defines HTTP routes for the todo service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kasim110/todo-service/internal/handlers"
	"github.com/kasim110/todo-service/internal/middleware"
	"github.com/kasim110/todo-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, authHandler *handlers.AuthHandler, todoHandler *handlers.TodoHandler, healthHandler *handlers.HealthHandler, jwtService service.JWTService) {
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	router.POST("/users", authHandler.Register)
	router.GET("/users/:user_id", authHandler.GetUser)
	router.POST("/login", authHandler.Login)

	// Protected routes. The gate only checks that a valid token is
	// present; it does not bind the caller's identity to the request.
	todos := router.Group("/todos")
	todos.Use(middleware.RequireAuth(jwtService))
	{
		todos.POST("", todoHandler.Create)
		todos.GET("", todoHandler.List)
		todos.GET("/:todo_id", todoHandler.Get)
		todos.PUT("/update/:todo_id", todoHandler.Update)
		todos.DELETE("/delete/:todo_id", todoHandler.Delete)
	}
}
