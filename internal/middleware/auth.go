package middleware

import (
	"strings"

	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthTokenCookie 登录成功后签发的会话令牌 cookie 名
const AuthTokenCookie = "auth_token"

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware 强制认证。令牌取自 Authorization 头或登录 cookie。
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware 可选认证，令牌缺失或无效时继续匿名访问
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}

// AdminOnly 仅放行管理员令牌
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil || !claims.Admin {
			util.Error(c, 403, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
