package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/rizwanuh/GovtProjectManager/config"
)

// ErrUnauthenticated 令牌缺失、无效或为匿名公钥
var ErrUnauthenticated = errors.New("未通过身份验证")

// AuthUser 身份服务返回的用户信息
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProviderError 身份服务返回的业务错误（例如邮箱已注册）
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("身份服务错误(%d): %s", e.Status, e.Message)
}

// AuthService 访问控制所需的身份服务能力
type AuthService interface {
	// Verify 校验访问令牌，失败时返回ErrUnauthenticated
	Verify(ctx context.Context, token string) (*AuthUser, error)
	// CreateUser 通过管理接口创建用户
	CreateUser(ctx context.Context, email, password, name string) (*AuthUser, error)
}

// AuthClient 托管身份服务的客户端。令牌的签发和会话管理完全由
// 身份服务负责，这里只做校验和管理端的用户创建
type AuthClient struct {
	baseURL        string
	serviceRoleKey string
	anonKey        string
	jwtSecret      []byte
	httpClient     *http.Client
}

func NewAuthClient(conf config.Config) *AuthClient {
	return &AuthClient{
		baseURL:        strings.TrimRight(conf.AuthURL, "/"),
		serviceRoleKey: conf.AuthServiceRoleKey,
		anonKey:        conf.AuthAnonKey,
		jwtSecret:      []byte(conf.AuthJWTSecret),
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify 校验访问令牌。匿名公钥一律视为未认证。配置了JWT密钥时
// 在本地校验令牌签名，省掉一次网络往返；否则调用身份服务的用户接口
func (a *AuthClient) Verify(ctx context.Context, token string) (*AuthUser, error) {
	if token == "" || token == a.anonKey {
		return nil, ErrUnauthenticated
	}

	if len(a.jwtSecret) > 0 {
		return a.verifyLocal(token)
	}
	return a.verifyRemote(ctx, token)
}

// verifyLocal 用共享密钥校验身份服务签发的HS256令牌
func (a *AuthClient) verifyLocal(tokenString string) (*AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrUnauthenticated
	}

	email, _ := claims["email"].(string)
	return &AuthUser{ID: sub, Email: email}, nil
}

// verifyRemote 调用身份服务的用户接口校验令牌
func (a *AuthClient) verifyRemote(ctx context.Context, token string) (*AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", a.anonKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用身份服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("身份服务返回异常状态码: %d", resp.StatusCode)
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("解析身份服务响应失败: %w", err)
	}
	if user.ID == "" {
		return nil, ErrUnauthenticated
	}
	return &user, nil
}

// CreateUser 通过管理接口创建用户。未配置邮件服务，注册时直接把邮箱置为已确认
func (a *AuthClient) CreateUser(ctx context.Context, email, password, name string) (*AuthUser, error) {
	payload := map[string]interface{}{
		"email":         email,
		"password":      password,
		"email_confirm": true,
		"user_metadata": map[string]string{"name": name},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/auth/v1/admin/users", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.serviceRoleKey)
	req.Header.Set("apikey", a.serviceRoleKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用身份服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &ProviderError{
			Status:  resp.StatusCode,
			Message: readProviderMessage(resp.Body),
		}
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("解析身份服务响应失败: %w", err)
	}
	return &user, nil
}

// readProviderMessage 从错误响应中尽量取出可读的错误描述
func readProviderMessage(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ""
	}

	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Msg != "":
			return body.Msg
		case body.Message != "":
			return body.Message
		case body.ErrorDescription != "":
			return body.ErrorDescription
		}
	}
	return string(raw)
}
