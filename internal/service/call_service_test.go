package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alperbenzer/transfer-process/internal/model"
	"github.com/alperbenzer/transfer-process/internal/repository"
	"github.com/alperbenzer/transfer-process/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestService 创建呼叫服务测试环境
func setupTestService(t *testing.T) (service.CallService, repository.CallRepository, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// 迁移数据库
	err = db.AutoMigrate(&model.CallModel{})
	require.NoError(t, err)

	repo := repository.NewCallRepository(db)
	return service.NewCallService(repo), repo, db
}

// transferRequest 构造一个呼叫转移请求
func transferRequest(externalID string) *service.TransferCallRequest {
	return &service.TransferCallRequest{
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
	}
}

// TestCallService_Transfer 测试呼叫转移
func TestCallService_Transfer(t *testing.T) {
	svc, _, _ := setupTestService(t)

	call, err := svc.Transfer(context.Background(), transferRequest("CALL-001"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), call.ID)
	assert.Equal(t, model.StatusTransferred, call.Status)
	assert.Nil(t, call.DocID)
	assert.False(t, call.CreatedAt.IsZero())
}

// TestCallService_Transfer_IncreasingIDs 测试 ID 严格递增
func TestCallService_Transfer_IncreasingIDs(t *testing.T) {
	svc, _, _ := setupTestService(t)

	var lastID uint
	for i := 1; i <= 5; i++ {
		call, err := svc.Transfer(context.Background(), transferRequest(fmt.Sprintf("CALL-%03d", i)))
		require.NoError(t, err)
		assert.Greater(t, call.ID, lastID)
		lastID = call.ID
	}
}

// TestCallService_Transfer_Duplicate 测试重复的外部 ID
func TestCallService_Transfer_Duplicate(t *testing.T) {
	svc, _, db := setupTestService(t)

	_, err := svc.Transfer(context.Background(), transferRequest("CALL-001"))
	require.NoError(t, err)

	_, err = svc.Transfer(context.Background(), transferRequest("CALL-001"))
	assert.ErrorIs(t, err, service.ErrDuplicateExternalID)

	// 存储中只有一条记录
	var count int64
	require.NoError(t, db.Model(&model.CallModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestCallService_Transfer_RacingDuplicate 测试查重后插入前被抢先时的冲突处理
func TestCallService_Transfer_RacingDuplicate(t *testing.T) {
	svc, repo, db := setupTestService(t)

	// 直接通过仓储插入，模拟另一个并发请求赢得竞争后的状态
	racer := &model.CallModel{
		ExternalCallID: "CALL-001",
		CallDate:       time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		SerialNumber:   "SN-9999",
		Title:          "Racer",
		Subject:        "Racer",
		SchoolCode:     "1",
		SchoolName:     "A",
		Province:       "B",
		District:       "C",
		ReporterName:   "D",
		ProductType:    "MPC1",
		Status:         model.StatusTransferred,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Create(racer))

	_, err := svc.Transfer(context.Background(), transferRequest("CALL-001"))
	assert.ErrorIs(t, err, service.ErrDuplicateExternalID)

	var count int64
	require.NoError(t, db.Model(&model.CallModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestCallService_Update 测试状态和文档 ID 更新
func TestCallService_Update(t *testing.T) {
	svc, _, _ := setupTestService(t)

	created, err := svc.Transfer(context.Background(), transferRequest("CALL-001"))
	require.NoError(t, err)

	status := "CLOSED"
	docID := "DOC-42"
	updated, err := svc.Update(context.Background(), created.ID, &service.UpdateCallRequest{
		Status: &status,
		DocID:  &docID,
	})
	require.NoError(t, err)

	assert.Equal(t, "CLOSED", updated.Status)
	require.NotNil(t, updated.DocID)
	assert.Equal(t, "DOC-42", *updated.DocID)
}

// TestCallService_Update_Partial 测试局部更新语义
func TestCallService_Update_Partial(t *testing.T) {
	svc, _, _ := setupTestService(t)

	created, err := svc.Transfer(context.Background(), transferRequest("CALL-001"))
	require.NoError(t, err)

	// 只更新 doc_id，status 保持不变
	docID := "DOC-1"
	updated, err := svc.Update(context.Background(), created.ID, &service.UpdateCallRequest{DocID: &docID})
	require.NoError(t, err)
	assert.Equal(t, model.StatusTransferred, updated.Status)
	require.NotNil(t, updated.DocID)
	assert.Equal(t, "DOC-1", *updated.DocID)

	// 只更新 status，doc_id 保持不变
	status := "IN_PROGRESS"
	updated, err = svc.Update(context.Background(), created.ID, &service.UpdateCallRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", updated.Status)
	require.NotNil(t, updated.DocID)
	assert.Equal(t, "DOC-1", *updated.DocID)

	// 两个字段都不提供，什么都不变
	updated, err = svc.Update(context.Background(), created.ID, &service.UpdateCallRequest{})
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", updated.Status)
	require.NotNil(t, updated.DocID)
	assert.Equal(t, "DOC-1", *updated.DocID)
}

// TestCallService_Update_NotFound 测试更新不存在的记录
func TestCallService_Update_NotFound(t *testing.T) {
	svc, _, db := setupTestService(t)

	status := "CLOSED"
	_, err := svc.Update(context.Background(), 9999, &service.UpdateCallRequest{Status: &status})
	assert.ErrorIs(t, err, service.ErrCallNotFound)

	var count int64
	require.NoError(t, db.Model(&model.CallModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// TestCallService_Update_ArbitraryStatus 测试状态转换不受限制
func TestCallService_Update_ArbitraryStatus(t *testing.T) {
	svc, _, _ := setupTestService(t)

	created, err := svc.Transfer(context.Background(), transferRequest("CALL-001"))
	require.NoError(t, err)

	// 任意字符串均可接受，CLOSED 之后也可以重新打开
	for _, status := range []string{"CLOSED", "REOPENED", "whatever"} {
		s := status
		updated, err := svc.Update(context.Background(), created.ID, &service.UpdateCallRequest{Status: &s})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

// TestCallService_List 测试呼叫记录列表
func TestCallService_List(t *testing.T) {
	svc, _, _ := setupTestService(t)

	for i := 1; i <= 3; i++ {
		_, err := svc.Transfer(context.Background(), transferRequest(fmt.Sprintf("CALL-%03d", i)))
		require.NoError(t, err)
	}

	calls, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, "CALL-003", calls[0].ExternalCallID)
	assert.Equal(t, "CALL-001", calls[2].ExternalCallID)
}
