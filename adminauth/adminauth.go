package adminauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"laundry/config"

	"github.com/gin-gonic/gin"
)

// 后台 Cookie 采用 "值.签名" 格式，签名为 HMAC-SHA256，
// 密钥复用 JWT secret，防止客户端篡改 user_id 越权

var (
	// ErrInvalidCookie Cookie 缺失、格式错误或签名不匹配
	ErrInvalidCookie = errors.New("invalid admin cookie")
)

func secret() []byte {
	return []byte(config.GetConfig().JWT.Secret)
}

func sign(value string) string {
	mac := hmac.New(sha256.New, secret())
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignCookieValue 对 Cookie 值附加签名
func SignCookieValue(value string) string {
	return value + "." + sign(value)
}

// VerifyCookieValue 校验签名并还原原始值
func VerifyCookieValue(signed string) (string, error) {
	i := strings.LastIndex(signed, ".")
	if i <= 0 {
		return "", ErrInvalidCookie
	}
	value, gotSig := signed[:i], signed[i+1:]
	if !hmac.Equal([]byte(gotSig), []byte(sign(value))) {
		return "", ErrInvalidCookie
	}
	return value, nil
}

// GetVerifiedAdminUserID 验证 admin_user_id cookie 签名并返回用户 ID
func GetVerifiedAdminUserID(c *gin.Context) (uint, error) {
	signed, err := c.Cookie("admin_user_id")
	if err != nil || signed == "" {
		return 0, ErrInvalidCookie
	}
	value, err := VerifyCookieValue(signed)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, ErrInvalidCookie
	}
	return uint(id), nil
}
