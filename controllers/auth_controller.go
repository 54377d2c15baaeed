package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rizwanuh/GovtProjectManager/config"
	"github.com/rizwanuh/GovtProjectManager/middleware"
	"github.com/rizwanuh/GovtProjectManager/models"
	"github.com/rizwanuh/GovtProjectManager/services"
)

// AuthController 认证控制器
type AuthController struct {
	auth services.AuthService
}

func NewAuthController(auth services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Index 存活检查
func (ac *AuthController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Project Management API Server",
		"status":  "running",
	})
}

// TestAuth 认证调试接口。失败时回显收到的请求头，方便排查前端的令牌问题
func (ac *AuthController) TestAuth(c *gin.Context) {
	token := middleware.BearerToken(c)
	user, err := ac.auth.Verify(c.Request.Context(), token)
	if err != nil {
		headers := make(map[string]string, len(c.Request.Header))
		for name, values := range c.Request.Header {
			headers[name] = strings.Join(values, ", ")
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Not authenticated",
			"headers": headers,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Authentication successful",
		"user":    gin.H{"id": user.ID, "email": user.Email},
	})
}

// Signup 注册接口，通过身份服务的管理接口创建账号
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.auth.CreateUser(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		var pe *services.ProviderError
		if errors.As(err, &pe) {
			config.Logger.Infow("注册被身份服务拒绝", "email", req.Email, "status", pe.Status, "message", pe.Message)
			c.JSON(http.StatusBadRequest, gin.H{"error": pe.Message})
			return
		}
		config.Logger.Errorw("注册失败", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during signup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
