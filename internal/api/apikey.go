package api

import (
	"net/http"

	"github.com/alperbenzer/transfer-process/internal/auth"
	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware API Key 鉴权中间件
// 在任何解析和校验之前执行；失败立即以 401 中断请求
func APIKeyMiddleware(verifier *auth.KeyVerifier, capability auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(auth.APIKeyHeader)
		if err := verifier.Verify(capability, key); err != nil {
			Error(c, http.StatusUnauthorized, T(c, "error.unauthorized"), "missing or invalid "+auth.APIKeyHeader+" header")
			c.Abort()
			return
		}

		c.Next()
	}
}
