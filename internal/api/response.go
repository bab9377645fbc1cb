package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应格式
// @Description 错误响应格式,包含错误码、错误消息和错误详情
type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`                // 错误码
	Message string `json:"message" example:"invalid request"` // 错误消息
	Detail  string `json:"detail,omitempty" example:"validation failed"` // 错误详情(可选)
}

// Error 错误响应
// 成功响应没有统一信封:三个业务端点的成功响应结构由外部系统约定固定
func Error(c *gin.Context, code int, message string, detail string) {
	statusCode := http.StatusInternalServerError
	if code >= 400 && code < 600 {
		statusCode = code
	}

	c.JSON(statusCode, ErrorResponse{
		Code:    code,
		Message: message,
		Detail:  detail,
	})
}
