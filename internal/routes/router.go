// Package routesはroutingを行います。
package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-task-api/internal/config"
	"go-task-api/internal/handlers"
	"go-task-api/internal/repositories"
	"go-task-api/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(cfg *config.Config, taskRepo repositories.TaskRepository) *gin.Engine {
	r := gin.Default()

	// CORS対策
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	r.Use(RequestIDMiddleware())

	// サービス
	taskService := services.NewTaskService(taskRepo)

	// ハンドラー
	taskHandler := handlers.NewTaskHandler(taskService)

	// ルーティング
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/tasks", taskHandler.CreateTaskHandler)
	r.GET("/tasks", taskHandler.GetTasksHandler)
	r.GET("/tasks/:id", taskHandler.GetTaskByIDHandler)
	r.PUT("/tasks/:id", taskHandler.UpdateTaskHandler)
	r.DELETE("/tasks/:id", taskHandler.DeleteTaskHandler)

	return r
}
