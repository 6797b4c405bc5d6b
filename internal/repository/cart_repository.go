package repository

import (
	"errors"
	"time"

	"github.com/shopnext/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	GetByUser(userID uint) (*models.Cart, error)
	GetItemForUpdate(cartID, productID uint) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(itemID uint, quantity int, now time.Time) error
	DeleteItem(cartID, productID uint) error
	ClearByCart(cartID uint) error
	DeleteDanglingItems(cartID uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetOrCreateByUser 获取用户购物车，不存在则创建空购物车。
// 购物车项连同商品快照一并加载，按加入时间排序。
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	created := &models.Cart{UserID: userID}
	if err := r.db.Create(created).Error; err != nil {
		// 并发首次访问时可能已被其它请求创建
		if existing, getErr := r.GetByUser(userID); getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	created.Items = []models.CartItem{}
	return created, nil
}

// GetByUser 按用户获取购物车，不存在返回 nil
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc, id asc")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetItemForUpdate 加锁读取购物车项，不存在返回 nil。
// 合并加购的 read-modify-write 必须经由该方法，否则并发加购会丢更新。
func (r *GormCartRepository) GetItemForUpdate(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem 创建购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// UpdateItemQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int, now time.Time) error {
	return r.db.Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": now,
		}).Error
}

// DeleteItem 删除购物车项（不存在时为空操作）
func (r *GormCartRepository) DeleteItem(cartID, productID uint) error {
	return r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error
}

// ClearByCart 清空购物车全部项
func (r *GormCartRepository) ClearByCart(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// DeleteDanglingItems 删除商品行已被彻底删除的购物车项。
// 存在性判断不带软删除过滤：软删除的商品行仍视为存在，其购物车项保留，
// 连同下架、零库存一样由读取投影以标记上报。
func (r *GormCartRepository) DeleteDanglingItems(cartID uint) (int64, error) {
	result := r.db.
		Where("cart_id = ? AND product_id NOT IN (?)",
			cartID,
			r.db.Unscoped().Model(&models.Product{}).Select("id"),
		).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
