package auth

import "errors"

// APIKeyHeader 携带 API Key 的请求头
const APIKeyHeader = "X-API-Key"

// Capability API Key 授权的能力
type Capability string

const (
	// CapabilityTransfer 呼叫转移能力（创建记录）
	CapabilityTransfer Capability = "transfer"
	// CapabilityManage 管理能力（更新和查询记录）
	CapabilityManage Capability = "manage"
)

var (
	// ErrInvalidAPIKey API Key 缺失或不匹配
	ErrInvalidAPIKey = errors.New("invalid API key")
	// ErrUnknownCapability 未知能力
	ErrUnknownCapability = errors.New("unknown capability")
)

// KeyVerifier 静态 API Key 验证器
// 两个 Key 相互独立，持有其中一个不授予另一个的能力
type KeyVerifier struct {
	transferKey string
	manageKey   string
}

// NewKeyVerifier 创建 API Key 验证器
func NewKeyVerifier(transferKey, manageKey string) *KeyVerifier {
	return &KeyVerifier{
		transferKey: transferKey,
		manageKey:   manageKey,
	}
}

// Verify 验证 API Key 是否授权指定能力
// 精确字符串比较；未配置的 Key 视为该能力关闭，一律拒绝
func (v *KeyVerifier) Verify(capability Capability, key string) error {
	var expected string
	switch capability {
	case CapabilityTransfer:
		expected = v.transferKey
	case CapabilityManage:
		expected = v.manageKey
	default:
		return ErrUnknownCapability
	}

	if expected == "" || key != expected {
		return ErrInvalidAPIKey
	}
	return nil
}
