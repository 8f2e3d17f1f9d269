package jwt

import (
	"time"

	"tyjk-club-backend/config"
	"tyjk-club-backend/internal/model"
	"tyjk-club-backend/tools"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Payload 令牌中携带的用户信息
type Payload struct {
	UserID uint       `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

type Claims struct {
	Payload
	jwtlib.RegisteredClaims
}

// CreateToken 签发访问令牌，过期时间由配置决定
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	now := time.Now()
	claims := Claims{
		Payload: payload,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Duration(cfg.AccessExpire) * time.Second)),
			Issuer:    "tyjk-club-backend",
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(cfg.AccessSecret))
	tools.PanicOnErr(err)
	return token
}

// ParseToken 解析并校验令牌，签名错误或过期均视为无效
func ParseToken(token string) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (any, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, false
	}
	return claims, true
}
