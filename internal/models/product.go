package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表（购物车核心只读，不在此核心内变更库存）
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                        // 主键
	Name          string         `gorm:"not null" json:"name"`                        // 商品名称
	SKU           string         `gorm:"uniqueIndex;not null" json:"sku"`             // 商品编码
	Image         string         `gorm:"default:''" json:"image"`                     // 商品图片
	Price         int64          `gorm:"not null;default:0" json:"price"`             // 当前价格（最小货币单位）
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`    // 可售库存
	IsActive      bool           `gorm:"index" json:"is_active"`                      // 是否上架（不设列默认值，false 才能原样落库）
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                  // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// IsSellable 商品当前是否可加入购物车。软删除的商品行视同下架。
func (p *Product) IsSellable() bool {
	return p != nil && !p.DeletedAt.Valid && p.IsActive && p.StockQuantity > 0
}
