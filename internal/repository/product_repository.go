package repository

import (
	"errors"

	"github.com/shopnext/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口。购物车核心只读取目录，从不写入。
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	ListAnyByIDs(ids []uint) ([]models.Product, error)
	ListActive() ([]models.Product, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByID 按ID获取商品，不存在返回 nil
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, nil
	}
	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListAnyByIDs 批量获取商品，包含软删除行。
// 投影需要区分商品行彻底不存在和仅被软删除两种情况。
func (r *GormProductRepository) ListAnyByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Unscoped().Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListActive 获取全部上架商品
func (r *GormProductRepository) ListActive() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_active = ?", true).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
