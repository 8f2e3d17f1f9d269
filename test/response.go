package test

import (
	"encoding/json"
	"testing"

	"tyjk-club-backend/internal/global/response"

	"github.com/stretchr/testify/require"
)

type ResponseBody = response.ResponseBody

func ErrorEqual(t *testing.T, expected *response.Error, resp ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
	require.Equal(t, expected.Message, resp.Msg)
}

func NoError(t *testing.T, resp ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}

// DecodeData 将响应 data 字段解码到给定结构体
func DecodeData(t *testing.T, resp ResponseBody, out any) {
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
