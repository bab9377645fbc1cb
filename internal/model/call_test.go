package model_test

import (
	"testing"
	"time"

	"github.com/alperbenzer/transfer-process/internal/model"
	"github.com/stretchr/testify/assert"
)

// validCall 构造一个通过验证的呼叫记录
func validCall() *model.CallModel {
	return &model.CallModel{
		ExternalCallID: "CALL-001",
		CallDate:       time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		SerialNumber:   "SN-1234",
		Title:          "Printer failure",
		Subject:        "Device does not power on",
		SchoolCode:     "706562",
		SchoolName:     "Atatürk Ortaokulu",
		Province:       "Ankara",
		District:       "Çankaya",
		ReporterName:   "Ali Veli",
		ProductType:    "MPC1",
		Status:         model.StatusTransferred,
	}
}

// TestCallModel_TableName 测试表名
func TestCallModel_TableName(t *testing.T) {
	assert.Equal(t, "calls", model.CallModel{}.TableName())
}

// TestCallModel_Validate 测试模型验证
func TestCallModel_Validate(t *testing.T) {
	call := validCall()
	assert.NoError(t, call.Validate())
}

// TestCallModel_Validate_MissingRequired 测试必填字段缺失
func TestCallModel_Validate_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CallModel)
	}{
		{"external call ID", func(c *model.CallModel) { c.ExternalCallID = "" }},
		{"call date", func(c *model.CallModel) { c.CallDate = time.Time{} }},
		{"serial number", func(c *model.CallModel) { c.SerialNumber = "" }},
		{"title", func(c *model.CallModel) { c.Title = "" }},
		{"subject", func(c *model.CallModel) { c.Subject = "" }},
		{"school code", func(c *model.CallModel) { c.SchoolCode = "" }},
		{"school name", func(c *model.CallModel) { c.SchoolName = "" }},
		{"province", func(c *model.CallModel) { c.Province = "" }},
		{"district", func(c *model.CallModel) { c.District = "" }},
		{"reporter name", func(c *model.CallModel) { c.ReporterName = "" }},
		{"product type", func(c *model.CallModel) { c.ProductType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := validCall()
			tt.mutate(call)
			assert.Error(t, call.Validate())
		})
	}
}

// TestCallModel_Validate_OptionalFields 测试可选字段为空时验证通过
func TestCallModel_Validate_OptionalFields(t *testing.T) {
	call := validCall()
	call.Description = ""
	call.Address = ""
	call.Phone = ""
	call.Email = ""
	call.DocID = nil
	assert.NoError(t, call.Validate())
}

// TestStatusTransferred 测试默认状态常量
func TestStatusTransferred(t *testing.T) {
	assert.Equal(t, "AKTARILDI", model.StatusTransferred)
}
