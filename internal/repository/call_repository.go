package repository

import (
	"github.com/alperbenzer/transfer-process/internal/model"
	"gorm.io/gorm"
)

// CallRepository 呼叫记录仓储接口
type CallRepository interface {
	Create(call *model.CallModel) error
	FindByID(id uint) (*model.CallModel, error)
	FindByExternalID(externalID string) (*model.CallModel, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	FindAll() ([]*model.CallModel, error)
}

// callRepository 呼叫记录仓储实现
type callRepository struct {
	db *gorm.DB
}

// NewCallRepository 创建呼叫记录仓储
func NewCallRepository(db *gorm.DB) CallRepository {
	return &callRepository{db: db}
}

// Create 插入呼叫记录
// external_call_id 的唯一约束冲突由数据库返回错误
func (r *callRepository) Create(call *model.CallModel) error {
	return r.db.Create(call).Error
}

// FindByID 根据 ID 查找呼叫记录
func (r *callRepository) FindByID(id uint) (*model.CallModel, error) {
	var call model.CallModel
	if err := r.db.Where("id = ?", id).First(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// FindByExternalID 根据外部 ID 查找呼叫记录
func (r *callRepository) FindByExternalID(externalID string) (*model.CallModel, error) {
	var call model.CallModel
	if err := r.db.Where("external_call_id = ?", externalID).First(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// UpdateFields 局部更新呼叫记录
// 只更新 fields 中给出的列，其余列保持不变
func (r *callRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.CallModel{}).Where("id = ?", id).Updates(fields).Error
}

// FindAll 查找所有呼叫记录（最新的在前）
func (r *callRepository) FindAll() ([]*model.CallModel, error) {
	var calls []*model.CallModel
	err := r.db.Order("id DESC").Find(&calls).Error
	return calls, err
}
