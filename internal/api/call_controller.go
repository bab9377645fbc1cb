package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/alperbenzer/transfer-process/internal/model"
	"github.com/alperbenzer/transfer-process/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CallController 呼叫记录控制器
type CallController struct {
	callService service.CallService
}

// NewCallController 创建呼叫记录控制器
func NewCallController(callService service.CallService) *CallController {
	return &CallController{
		callService: callService,
	}
}

// TransferCallResponse 呼叫转移响应
// @Description 呼叫转移成功后返回新记录的 ID
type TransferCallResponse struct {
	ID      uint   `json:"id" example:"1"`
	Message string `json:"message" example:"New fault record created successfully."`
}

// UpdateCallResponse 呼叫记录更新响应
// @Description 更新成功后返回记录当前的状态和文档 ID
type UpdateCallResponse struct {
	ID      uint    `json:"id" example:"1"`
	Status  string  `json:"status" example:"CLOSED"`
	DocID   *string `json:"doc_id" example:"DOC-42"`
	Message string  `json:"message" example:"Call record updated successfully."`
}

// Transfer 接收外部系统转移的呼叫
// @Summary      转移故障呼叫
// @Description  外部系统提交新的故障呼叫记录
// @Tags         呼叫管理
// @Accept       json
// @Produce      json
// @Param        request body service.TransferCallRequest true "呼叫信息"
// @Success      200  {object}  TransferCallResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /transfer [post]
// @Security     ApiKeyAuth
func (c *CallController) Transfer(ctx *gin.Context) {
	var req service.TransferCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", bindingErrorDetail(err))
		return
	}

	call, err := c.callService.Transfer(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateExternalID) {
			Error(ctx, http.StatusConflict, T(ctx, "error.conflict"), "external_call_id: "+req.ExternalCallID)
			return
		}
		// 持久化失败同样作为 400 返回并携带原因，与原始服务的宽松风格一致
		_ = ctx.Error(WrapError(err, http.StatusBadRequest, "failed to create call record"))
		return
	}

	ctx.JSON(http.StatusOK, TransferCallResponse{
		ID:      call.ID,
		Message: T(ctx, "success.transferred"),
	})
}

// Update 更新呼叫记录
// @Summary      更新呼叫记录
// @Description  更新呼叫记录的状态和工单文档 ID（局部更新）
// @Tags         呼叫管理
// @Accept       json
// @Produce      json
// @Param        id path int true "呼叫记录 ID"
// @Param        request body service.UpdateCallRequest false "更新信息"
// @Success      200  {object}  UpdateCallResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /calls/{id} [patch]
// @Security     ApiKeyAuth
func (c *CallController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		Error(ctx, http.StatusBadRequest, "invalid call ID", "call ID must be a positive integer")
		return
	}

	// status 和 doc_id 可通过请求体或查询参数传入，空请求体表示不修改任何字段
	var req service.UpdateCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		Error(ctx, http.StatusBadRequest, "invalid request", bindingErrorDetail(err))
		return
	}
	if v, ok := ctx.GetQuery("status"); ok {
		req.Status = &v
	}
	if v, ok := ctx.GetQuery("doc_id"); ok {
		req.DocID = &v
	}

	call, err := c.callService.Update(ctx.Request.Context(), uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrCallNotFound) {
			Error(ctx, http.StatusNotFound, T(ctx, "error.not_found"), fmt.Sprintf("id: %d", id))
			return
		}
		_ = ctx.Error(WrapError(err, http.StatusInternalServerError, "failed to update call record"))
		return
	}

	ctx.JSON(http.StatusOK, UpdateCallResponse{
		ID:      call.ID,
		Status:  call.Status,
		DocID:   call.DocID,
		Message: T(ctx, "success.updated"),
	})
}

// List 列出所有呼叫记录
// @Summary      列出呼叫记录
// @Description  返回全部呼叫记录，按 ID 降序
// @Tags         呼叫管理
// @Produce      json
// @Success      200  {array}   model.CallModel
// @Failure      401  {object}  ErrorResponse
// @Router       /calls [get]
// @Security     ApiKeyAuth
func (c *CallController) List(ctx *gin.Context) {
	calls, err := c.callService.List(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(WrapError(err, http.StatusInternalServerError, "failed to list call records"))
		return
	}

	// 保证空结果序列化为 [] 而不是 null
	if calls == nil {
		calls = []*model.CallModel{}
	}
	ctx.JSON(http.StatusOK, calls)
}

// bindingErrorDetail 将绑定错误转换为按字段列出的详情
func bindingErrorDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
