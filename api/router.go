package api

import (
	"github.com/gin-gonic/gin"
	"github.com/terzigolu/taskboard-go/api/handlers"
	"github.com/terzigolu/taskboard-go/api/middleware"
	"gorm.io/gorm"
)

// NewRouter builds the HTTP router with all routes mounted.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.Login(db))
		auth.GET("/validate", middleware.TokenAuth(db), handlers.ValidateToken())
	}

	authed := r.Group("/", middleware.TokenAuth(db))
	{
		authed.GET("/tasks", handlers.ListTasks(db))
		authed.POST("/tasks", handlers.CreateTask(db))
		authed.GET("/tasks/:id", handlers.GetTask(db))
		authed.PUT("/tasks/:id", handlers.UpdateTask(db))
		authed.PATCH("/tasks/:id", handlers.UpdateTask(db))
		authed.DELETE("/tasks/:id", handlers.DeleteTask(db))

		authed.GET("/todos", handlers.ListTodos(db))
		authed.POST("/todos", handlers.CreateTodo(db))
		authed.GET("/todos/:id", handlers.GetTodo(db))
		authed.PUT("/todos/:id", handlers.UpdateTodo(db))
		authed.PATCH("/todos/:id", handlers.UpdateTodo(db))
		authed.DELETE("/todos/:id", handlers.DeleteTodo(db))
	}

	return r
}
