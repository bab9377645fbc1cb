package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alperbenzer/transfer-process/internal/metrics"
	"github.com/alperbenzer/transfer-process/internal/model"
	"github.com/alperbenzer/transfer-process/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateExternalID 外部呼叫 ID 已被使用
	ErrDuplicateExternalID = errors.New("external call ID already exists")
	// ErrCallNotFound 呼叫记录不存在
	ErrCallNotFound = errors.New("call record not found")
)

// CallService 呼叫记录服务接口
type CallService interface {
	Transfer(ctx context.Context, req *TransferCallRequest) (*model.CallModel, error)
	Update(ctx context.Context, id uint, req *UpdateCallRequest) (*model.CallModel, error)
	List(ctx context.Context) ([]*model.CallModel, error)
}

// TransferCallRequest 呼叫转移请求
// @Description 外部系统转移故障呼叫的请求参数
type TransferCallRequest struct {
	ExternalCallID string    `json:"external_call_id" example:"CALL-001" binding:"required"` // 外部呼叫 ID
	CallDate       time.Time `json:"call_date" example:"2025-06-01T10:30:00Z" binding:"required"` // 呼叫日期
	SerialNumber   string    `json:"serial_number" example:"SN-1234" binding:"required"` // 设备序列号
	Title          string    `json:"title" example:"Printer failure" binding:"required"` // 标题
	Subject        string    `json:"subject" example:"Device does not power on" binding:"required"` // 主题
	Description    string    `json:"description" example:"Detailed fault description"` // 描述（可选）
	Address        string    `json:"address" example:"Ankara, Çankaya"` // 地址（可选）
	SchoolCode     string    `json:"school_code" example:"706562" binding:"required"` // 学校代码
	SchoolName     string    `json:"school_name" example:"Atatürk Ortaokulu" binding:"required"` // 学校名称
	Province       string    `json:"province" example:"Ankara" binding:"required"` // 省
	District       string    `json:"district" example:"Çankaya" binding:"required"` // 区
	ReporterName   string    `json:"reporter_name" example:"Ali Veli" binding:"required"` // 报告人
	Phone          string    `json:"phone" example:"+90 555 000 0000"` // 电话（可选）
	Email          string    `json:"email" example:"reporter@example.com" binding:"omitempty,email"` // 邮箱（可选，需合法）
	ProductType    string    `json:"product_type" example:"MPC1" binding:"required"` // 产品类型
}

// UpdateCallRequest 呼叫记录更新请求
// @Description 更新状态或工单文档 ID，未提供的字段保持不变
type UpdateCallRequest struct {
	Status *string `json:"status" example:"CLOSED"`  // 呼叫状态（可选）
	DocID  *string `json:"doc_id" example:"DOC-42"` // 工单文档 ID（可选）
}

// callService 呼叫记录服务实现
type callService struct {
	repo repository.CallRepository
}

// NewCallService 创建呼叫记录服务
func NewCallService(repo repository.CallRepository) CallService {
	return &callService{repo: repo}
}

// Transfer 接收外部系统转移的呼叫记录
// 对同一 external_call_id 的两次提交，只有一次成功：
// 先查重拒绝，并发竞争时由唯一索引兜底
func (s *callService) Transfer(ctx context.Context, req *TransferCallRequest) (*model.CallModel, error) {
	if existing, err := s.repo.FindByExternalID(req.ExternalCallID); err == nil && existing != nil {
		return nil, ErrDuplicateExternalID
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check external call ID: %w", err)
	}

	call := &model.CallModel{
		ExternalCallID: req.ExternalCallID,
		CallDate:       req.CallDate,
		SerialNumber:   req.SerialNumber,
		Title:          req.Title,
		Subject:        req.Subject,
		Description:    req.Description,
		Address:        req.Address,
		SchoolCode:     req.SchoolCode,
		SchoolName:     req.SchoolName,
		Province:       req.Province,
		District:       req.District,
		ReporterName:   req.ReporterName,
		Phone:          req.Phone,
		Email:          req.Email,
		ProductType:    req.ProductType,
		Status:         model.StatusTransferred,
		CreatedAt:      time.Now().UTC(),
	}

	if err := call.Validate(); err != nil {
		return nil, fmt.Errorf("invalid call record: %w", err)
	}

	if err := s.repo.Create(call); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateExternalID
		}
		return nil, fmt.Errorf("failed to create call record: %w", err)
	}

	metrics.RecordCallTransferred(call.ProductType)
	return call, nil
}

// Update 局部更新呼叫记录的状态和工单文档 ID
// 状态值不做转换校验，任意字符串均可接受
func (s *callService) Update(ctx context.Context, id uint, req *UpdateCallRequest) (*model.CallModel, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to find call record: %w", err)
	}

	fields := make(map[string]interface{})
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.DocID != nil {
		fields["doc_id"] = *req.DocID
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(id, fields); err != nil {
			return nil, fmt.Errorf("failed to update call record: %w", err)
		}
		metrics.RecordCallUpdated()
	}

	call, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload call record: %w", err)
	}
	return call, nil
}

// List 返回所有呼叫记录（按 ID 降序）
func (s *callService) List(ctx context.Context) ([]*model.CallModel, error) {
	calls, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list call records: %w", err)
	}
	return calls, nil
}

// isUniqueViolation 判断错误是否为唯一约束冲突
// SQLite 与 PostgreSQL 的报错文本不同，gorm 的错误翻译不总是开启
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
