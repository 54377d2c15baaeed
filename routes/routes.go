package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rizwanuh/GovtProjectManager/config"
	"github.com/rizwanuh/GovtProjectManager/controllers"
	"github.com/rizwanuh/GovtProjectManager/middleware"
	"github.com/rizwanuh/GovtProjectManager/services"
)

// RegisterRoutes 注册全部路由。所有收敛在与前端约定的固定路径前缀之下
func RegisterRoutes(r *gin.Engine, conf config.Config, auth services.AuthService, projects *services.ProjectService, tasks *services.TaskService) {
	authController := controllers.NewAuthController(auth)
	projectController := controllers.NewProjectController(projects)
	taskController := controllers.NewTaskController(tasks, projects)
	statsController := controllers.NewStatsController(projects, tasks)

	api := r.Group(conf.APIBasePath)

	// 公开路由（无需认证）
	api.GET("/", authController.Index)
	api.GET("/test-auth", authController.TestAuth)
	api.POST("/signup", authController.Signup)

	// 需要认证的路由
	private := api.Group("")
	private.Use(middleware.AuthMiddleware(auth)) // 应用认证中间件
	{
		private.GET("/projects", projectController.List)
		private.POST("/projects", projectController.Create)
		private.PUT("/projects/:id", projectController.Update)
		private.DELETE("/projects/:id", projectController.Delete)

		private.GET("/tasks", taskController.List)
		private.POST("/tasks", taskController.Create)
		private.PUT("/tasks/:id", taskController.Update)
		private.DELETE("/tasks/:id", taskController.Delete)

		private.GET("/stats", statsController.Summary)
	}
}
