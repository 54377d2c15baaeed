package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rizwanuh/GovtProjectManager/services"
)

// AuthMiddleware 认证中间件。校验Bearer令牌并把用户身份写入上下文，
// 校验失败时直接返回401，后续处理不会触碰存储
func AuthMiddleware(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		user, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Please sign in"})
			return
		}

		// 将用户身份存储在 gin.Context 中
		c.Set("uid", user.ID)
		c.Set("email", user.Email)
		c.Next()
	}
}

// BearerToken 从Authorization头中取出Bearer令牌，没有时返回空串
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
