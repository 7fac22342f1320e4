package middleware

import (
	"github.com/gin-gonic/gin"

	"go-shop-api/pkg/utils"
)

const KeyRequestID = "X-Request-ID"

// RequestID 透传上游带来的请求 ID，没有就补一个 32 位 hex（和主键同一格式）
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = utils.NewID()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
