package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tyjk-club-backend/internal/global/jwt"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(minRole model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(minRole), func(c *gin.Context) {
		response.Success(c, gin.H{"message": "ok"})
	})
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, token string) (int, response.ResponseBody) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return w.Code, body
}

func TestAuthMissingToken(t *testing.T) {
	r := newAuthRouter(model.RoleUser)

	status, body := doAuthRequest(t, r, "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, response.ErrTokenMissing.Code, body.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	r := newAuthRouter(model.RoleUser)

	// 缺少 Bearer 前缀
	status, body := doAuthRequest(t, r, "garbage")
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, response.ErrTokenInvalid.Code, body.Code)

	// 无法解析的令牌
	status, body = doAuthRequest(t, r, "Bearer not-a-token")
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, response.ErrTokenInvalid.Code, body.Code)
}

func TestAuthValidToken(t *testing.T) {
	r := newAuthRouter(model.RoleUser)
	token := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "a@example.com", Role: model.RoleUser})

	status, body := doAuthRequest(t, r, "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, int32(200), body.Code)
}

func TestAuthRoleTooLow(t *testing.T) {
	r := newAuthRouter(model.RoleAdmin)
	token := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "a@example.com", Role: model.RoleUser})

	status, body := doAuthRequest(t, r, "Bearer "+token)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, response.ErrUnauthorized.Code, body.Code)
}

func TestAuthAdminPasses(t *testing.T) {
	r := newAuthRouter(model.RoleAdmin)
	token := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "admin@example.com", Role: model.RoleAdmin})

	status, _ := doAuthRequest(t, r, "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
}
