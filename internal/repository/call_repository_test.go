package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/alperbenzer/transfer-process/internal/model"
	"github.com/alperbenzer/transfer-process/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 创建呼叫仓储测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// 迁移数据库
	err = db.AutoMigrate(&model.CallModel{})
	require.NoError(t, err)

	return db
}

// newCall 构造一个呼叫记录
func newCall(externalID string) *model.CallModel {
	return &model.CallModel{
		ExternalCallID: externalID,
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
		CreatedAt:      time.Now().UTC(),
	}
}

// TestCallRepository_Create 测试插入呼叫记录
func TestCallRepository_Create(t *testing.T) {
	repo := repository.NewCallRepository(setupTestDB(t))

	call := newCall("CALL-001")
	require.NoError(t, repo.Create(call))

	assert.NotZero(t, call.ID)
}

// TestCallRepository_Create_DuplicateExternalID 测试唯一约束
func TestCallRepository_Create_DuplicateExternalID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCallRepository(db)

	require.NoError(t, repo.Create(newCall("CALL-001")))

	err := repo.Create(newCall("CALL-001"))
	assert.Error(t, err)

	// 冲突的插入不应改变存储
	var count int64
	require.NoError(t, db.Model(&model.CallModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestCallRepository_FindByID 测试按 ID 查找
func TestCallRepository_FindByID(t *testing.T) {
	repo := repository.NewCallRepository(setupTestDB(t))

	call := newCall("CALL-001")
	require.NoError(t, repo.Create(call))

	found, err := repo.FindByID(call.ID)
	require.NoError(t, err)
	assert.Equal(t, "CALL-001", found.ExternalCallID)

	_, err = repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// TestCallRepository_FindByExternalID 测试按外部 ID 查找
func TestCallRepository_FindByExternalID(t *testing.T) {
	repo := repository.NewCallRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newCall("CALL-001")))

	found, err := repo.FindByExternalID("CALL-001")
	require.NoError(t, err)
	assert.Equal(t, "CALL-001", found.ExternalCallID)

	_, err = repo.FindByExternalID("CALL-404")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// TestCallRepository_UpdateFields 测试局部更新
func TestCallRepository_UpdateFields(t *testing.T) {
	repo := repository.NewCallRepository(setupTestDB(t))

	call := newCall("CALL-001")
	require.NoError(t, repo.Create(call))

	require.NoError(t, repo.UpdateFields(call.ID, map[string]interface{}{
		"status": "CLOSED",
		"doc_id": "DOC-42",
	}))

	found, err := repo.FindByID(call.ID)
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", found.Status)
	require.NotNil(t, found.DocID)
	assert.Equal(t, "DOC-42", *found.DocID)
	// 其余字段保持不变
	assert.Equal(t, "CALL-001", found.ExternalCallID)
	assert.Equal(t, "Printer failure", found.Title)
}

// TestCallRepository_FindAll 测试列表按 ID 降序
func TestCallRepository_FindAll(t *testing.T) {
	repo := repository.NewCallRepository(setupTestDB(t))

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(newCall(fmt.Sprintf("CALL-%03d", i))))
	}

	calls, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, calls, 3)

	// 最新创建的在前
	assert.Equal(t, "CALL-003", calls[0].ExternalCallID)
	assert.Equal(t, "CALL-002", calls[1].ExternalCallID)
	assert.Equal(t, "CALL-001", calls[2].ExternalCallID)
	assert.Greater(t, calls[0].ID, calls[1].ID)
	assert.Greater(t, calls[1].ID, calls[2].ID)
}
