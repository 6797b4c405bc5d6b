package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart 购物车表（每个用户至多一个，首次访问时惰性创建，清空后保留）
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 主键
	UUID      string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"` // 对外标识
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`           // 所属用户
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                    // 更新时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// BeforeCreate 补齐对外 UUID
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.NewString()
	}
	return nil
}
