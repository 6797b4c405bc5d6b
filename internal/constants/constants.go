package constants

// 货币常量
const (
	// DefaultCurrencySymbol 默认货币符号（金额展示用）
	DefaultCurrencySymbol = "$"
)

// 队列常量
const (
	QueueDefault = "default"

	// TaskCartPrune 清理失效购物车项任务
	TaskCartPrune = "cart:prune"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)
