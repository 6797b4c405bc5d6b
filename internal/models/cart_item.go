package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem 购物车项。每个 (cart_id, product_id) 至多一行；
// quantity 恒 >= 1，数量归零时整行删除而不是保留零值。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                        // 主键
	UUID      string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`           // 对外标识
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_item_cart_product" json:"cart_id"`    // 所属购物车
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_item_cart_product" json:"product_id"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                    // 数量
	UnitPrice int64     `gorm:"not null" json:"unit_price"`                                  // 单价快照（首次加入时锁定，最小货币单位）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                     // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// BeforeCreate 补齐对外 UUID
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.UUID == "" {
		i.UUID = uuid.NewString()
	}
	return nil
}
