package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"tyjk-club-backend/internal/global/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Request 描述一次对单个 handler 的测试调用
type Request struct {
	Method  string       // 默认 POST
	Body    any          // JSON 请求体
	Query   url.Values   // 查询参数
	Params  gin.Params   // 路径参数
	Payload *jwt.Payload // 模拟已通过认证的用户
}

func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request Request) (response ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	method := request.Method
	if method == "" {
		method = http.MethodPost
	}
	target := "/test"
	if request.Query != nil {
		target += "?" + request.Query.Encode()
	}

	var body *bytes.Reader
	if request.Body != nil {
		requestBytes, err := json.Marshal(request.Body)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	} else {
		body = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = request.Params
	if request.Payload != nil {
		c.Set("payload", &jwt.Claims{Payload: *request.Payload})
	}

	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return
}
