package service

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrCartItemNotFound 购物车项不存在
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrInvalidQuantity 数量不合法（必须 >= 1）
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidUser 用户标识不合法
	ErrInvalidUser = errors.New("invalid user")
	// ErrCartPersistFailed 购物车持久化失败（内部原因已记录日志，不外泄）
	ErrCartPersistFailed = errors.New("cart persist failed")
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserDisabled 账号被禁用
	ErrUserDisabled = errors.New("user disabled")
)

// OutOfStockError 商品不可售（下架或零库存）
type OutOfStockError struct {
	ProductName string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("Product '%s' is out of stock", e.ProductName)
}

// InsufficientStockError 库存不足。Requested 是合并后的目标总量，不是本次提交的增量。
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product '%s'. Requested: %d, Available: %d",
		e.ProductName, e.Requested, e.Available)
}
