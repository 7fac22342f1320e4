package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-shop-api/internal/core/auth"
	resp "go-shop-api/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 解析 Bearer access token，写入 userId/role；
// requireRole 非空时还要求角色匹配（"admin" 即 require_admin）
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, resp.CodeUnauthorized, "Missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "), auth.TokenAccess)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "Invalid or expired token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.Abort(c, resp.CodeForbidden, "Admin privileges required")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
