package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError 带 HTTP 状态码的 API 错误
type APIError struct {
	Code    int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorHandlerMiddleware 统一错误处理中间件
// 控制器通过 c.Error 上报的错误在此处转换为 JSON 错误响应；
// 已经写出响应的请求（如 401、409 等直接返回的路径）不再覆盖
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last()

		var apiErr *APIError
		if errors.As(err.Err, &apiErr) {
			Error(c, apiErr.Code, apiErr.Message, apiErr.Detail)
			return
		}
		Error(c, http.StatusInternalServerError, "internal server error", err.Error())
	}
}

// WrapError 将底层错误包装为带状态码的 APIError
func WrapError(err error, code int, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Detail:  err.Error(),
	}
}
