package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims 后端令牌中关心的声明
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// ParseTokenClaims 不校验签名地解析令牌声明。
// 签名校验由后端完成，客户端只读取过期时间等信息。
func ParseTokenClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("解析令牌失败: %w", err)
	}
	return claims, nil
}

// TokenExpired 判断令牌是否已过期，没有 exp 声明时视为未过期
func TokenExpired(tokenString string) (bool, error) {
	claims, err := ParseTokenClaims(tokenString)
	if err != nil {
		return false, err
	}
	if claims.ExpiresAt == nil {
		return false, nil
	}
	return claims.ExpiresAt.Before(time.Now()), nil
}
