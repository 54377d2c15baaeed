package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupMiddleware 配置全局中间件
func SetupMiddleware(r *gin.Engine) {
	// CORS中间件，前端部署在独立域名下，全部放开
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// 请求日志中间件
	r.Use(RequestLogger())

	// 错误恢复中间件
	r.Use(gin.Recovery())
}
