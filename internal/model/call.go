package model

import (
	"errors"
	"time"
)

// StatusTransferred 呼叫记录创建时的默认状态（土耳其语 "已转移"）
const StatusTransferred = "AKTARILDI"

// CallModel 呼叫记录数据模型
type CallModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ExternalCallID string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"external_call_id"` // 外部系统分配的唯一 ID
	CallDate       time.Time `gorm:"not null" json:"call_date"`
	SerialNumber   string    `gorm:"type:varchar(64);not null" json:"serial_number"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Subject        string    `gorm:"type:varchar(255);not null" json:"subject"`
	Description    string    `gorm:"type:text" json:"description"`
	Address        string    `gorm:"type:varchar(255)" json:"address"`
	SchoolCode     string    `gorm:"type:varchar(32);not null;index" json:"school_code"`
	SchoolName     string    `gorm:"type:varchar(255);not null" json:"school_name"`
	Province       string    `gorm:"type:varchar(64);not null" json:"province"`
	District       string    `gorm:"type:varchar(64);not null" json:"district"`
	ReporterName   string    `gorm:"type:varchar(128);not null" json:"reporter_name"`
	Phone          string    `gorm:"type:varchar(32)" json:"phone"`
	Email          string    `gorm:"type:varchar(128)" json:"email"`
	ProductType    string    `gorm:"type:varchar(32);not null" json:"product_type"` // 产品类型（自由字符串）
	Status         string    `gorm:"type:varchar(32);not null;index" json:"status"` // 呼叫状态
	DocID          *string   `gorm:"type:varchar(64)" json:"doc_id"`                // 工单文档 ID（创建时为空）
	CreatedAt      time.Time `gorm:"not null;index" json:"created_at"`
}

// TableName 指定表名
func (CallModel) TableName() string {
	return "calls"
}

// Validate 验证呼叫记录模型
func (cm *CallModel) Validate() error {
	if cm.ExternalCallID == "" {
		return errors.New("external call ID is required")
	}
	if cm.CallDate.IsZero() {
		return errors.New("call date is required")
	}
	if cm.SerialNumber == "" {
		return errors.New("serial number is required")
	}
	if cm.Title == "" {
		return errors.New("title is required")
	}
	if cm.Subject == "" {
		return errors.New("subject is required")
	}
	if cm.SchoolCode == "" {
		return errors.New("school code is required")
	}
	if cm.SchoolName == "" {
		return errors.New("school name is required")
	}
	if cm.Province == "" {
		return errors.New("province is required")
	}
	if cm.District == "" {
		return errors.New("district is required")
	}
	if cm.ReporterName == "" {
		return errors.New("reporter name is required")
	}
	if cm.ProductType == "" {
		return errors.New("product type is required")
	}
	return nil
}
