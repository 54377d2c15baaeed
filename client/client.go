// Package client 是后端API的类型化客户端，是浏览器端数据层的Go版本。
// 每次请求自动附带当前会话令牌（未登录时回落到匿名公钥），
// 任何非2xx响应都转换成统一的APIError
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError 服务端返回的非2xx响应
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error (%d): %s", e.Status, e.Body)
}

// AccountUser 注册接口返回的账号信息
type AccountUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client 后端API客户端
type Client struct {
	baseURL    string
	anonKey    string
	token      string
	httpClient *http.Client
}

// New 创建客户端。baseURL需要包含固定的路径前缀
func New(baseURL, anonKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetSession 设置当前会话的访问令牌，传空串回到匿名状态
func (c *Client) SetSession(token string) {
	c.token = token
}

// SignUp 注册新账号
func (c *Client) SignUp(ctx context.Context, email, password, name string) (*AccountUser, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var out struct {
		User AccountUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// do 发送请求并解码响应。out为nil时丢弃响应体
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	token := c.token
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func taskQuery(projectID string) string {
	if projectID == "" {
		return ""
	}
	return "?project_id=" + url.QueryEscape(projectID)
}
