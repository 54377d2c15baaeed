package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rizwanuh/GovtProjectManager/config"
	"github.com/rizwanuh/GovtProjectManager/routes"
	"github.com/rizwanuh/GovtProjectManager/services"
)

const (
	basePath = "/make-server-d22d6276"
	anonKey  = "public-anon-key"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
}

// fakeAuth 测试用身份服务。令牌直接映射到用户，匿名公钥视为未认证
type fakeAuth struct {
	users     map[string]services.AuthUser
	createErr error
}

func (f *fakeAuth) Verify(ctx context.Context, token string) (*services.AuthUser, error) {
	if token == "" || token == anonKey {
		return nil, services.ErrUnauthenticated
	}
	user, ok := f.users[token]
	if !ok {
		return nil, services.ErrUnauthenticated
	}
	return &user, nil
}

func (f *fakeAuth) CreateUser(ctx context.Context, email, password, name string) (*services.AuthUser, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &services.AuthUser{ID: "new-user", Email: email}, nil
}

func defaultFakeAuth() *fakeAuth {
	return &fakeAuth{users: map[string]services.AuthUser{
		"tok-u1": {ID: "u1", Email: "u1@example.com"},
		"tok-u2": {ID: "u2", Email: "u2@example.com"},
	}}
}

func newTestRouter(auth services.AuthService) (*gin.Engine, *services.MemoryStore) {
	store := services.NewMemoryStore()
	r := gin.New()
	conf := config.Config{APIBasePath: basePath}
	routes.RegisterRoutes(r, conf, auth, services.NewProjectService(store), services.NewTaskService(store))
	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, basePath+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body=%s", w.Body.String())
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, w.Code, "body=%s", w.Body.String())
}
