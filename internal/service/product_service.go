package service

import (
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"
)

// ProductService 商品目录只读服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListActive 上架商品列表
func (s *ProductService) ListActive() ([]models.Product, error) {
	products, err := s.productRepo.ListActive()
	if err != nil {
		logger.Errorw("product_list_failed", "error", err)
		return nil, err
	}
	return products, nil
}

// GetActive 获取上架商品详情
func (s *ProductService) GetActive(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		logger.Errorw("product_fetch_failed", "product_id", id, "error", err)
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}
