package service

import (
	"github.com/shopnext/internal/models"
)

// StockValidator 库存校验器。只读目录快照做判定，从不扣减库存：
// 校验是建议性的，不做跨用户预占。
type StockValidator struct{}

// NewStockValidator 创建库存校验器
func NewStockValidator() *StockValidator {
	return &StockValidator{}
}

// EnsureSellable 商品必须存在且可售（上架且库存大于零）
func (v *StockValidator) EnsureSellable(product *models.Product) error {
	if product == nil {
		return ErrProductNotFound
	}
	if !product.IsSellable() {
		return &OutOfStockError{ProductName: product.Name}
	}
	return nil
}

// EnsureWithinStock 目标数量不得超过当前库存。
// requested 传合并后的目标总量，错误信息原样携带两个数值。
func (v *StockValidator) EnsureWithinStock(product *models.Product, requested int) error {
	if product == nil {
		return ErrProductNotFound
	}
	if requested > product.StockQuantity {
		return &InsufficientStockError{
			ProductName: product.Name,
			Requested:   requested,
			Available:   product.StockQuantity,
		}
	}
	return nil
}
