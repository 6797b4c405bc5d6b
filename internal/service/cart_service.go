package service

import (
	"time"

	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/queue"
	"github.com/shopnext/internal/repository"

	"gorm.io/gorm"
)

// CartService 购物车命令服务。每个命令在单个事务内执行，
// 失败时不留下任何部分写入。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	validator   *StockValidator
	queueClient *queue.Client
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, validator *StockValidator, queueClient *queue.Client) *CartService {
	if validator == nil {
		validator = NewStockValidator()
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		validator:   validator,
		queueClient: queueClient,
	}
}

// GetCart 获取用户购物车投影，首次访问时惰性创建空购物车。幂等。
func (s *CartService) GetCart(userID uint) (*CartData, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "user_id", userID, "error", err)
		return nil, ErrCartPersistFailed
	}
	return s.buildProjection(cart)
}

// AddItem 加购。同商品合并数量；单价快照在首次加入时锁定，
// 合并时不刷新为现价（价格锁定策略，待产品侧确认）。
func (s *CartService) AddItem(userID, productID uint, quantity int) (*CartData, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		logger.Errorw("cart_add_product_fetch_failed", "product_id", productID, "error", err)
		return nil, ErrCartPersistFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.validator.EnsureSellable(product); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "user_id", userID, "error", err)
		return nil, ErrCartPersistFailed
	}

	now := time.Now()
	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		// 加锁读保证合并的 read-modify-write 原子性
		existing, err := repo.GetItemForUpdate(cart.ID, productID)
		if err != nil {
			return err
		}

		target := quantity
		if existing != nil {
			target = existing.Quantity + quantity
		}
		if err := s.validator.EnsureWithinStock(product, target); err != nil {
			return err
		}

		if existing == nil {
			return repo.CreateItem(&models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  target,
				UnitPrice: product.Price,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		return repo.UpdateItemQuantity(existing.ID, target, now)
	})
	if err != nil {
		return nil, s.commandError("cart_add_failed", userID, productID, err)
	}

	return s.refresh(userID)
}

// UpdateItem 更新购物车项数量（整体替换，不合并）
func (s *CartService) UpdateItem(userID, productID uint, quantity int) (*CartData, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "user_id", userID, "error", err)
		return nil, ErrCartPersistFailed
	}
	// 先判定购物车项归属，再解析商品
	if cart == nil || !cartHasProduct(cart, productID) {
		return nil, ErrCartItemNotFound
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		logger.Errorw("cart_update_product_fetch_failed", "product_id", productID, "error", err)
		return nil, ErrCartPersistFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	now := time.Now()
	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		existing, err := repo.GetItemForUpdate(cart.ID, productID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrCartItemNotFound
		}
		if err := s.validator.EnsureWithinStock(product, quantity); err != nil {
			return err
		}
		return repo.UpdateItemQuantity(existing.ID, quantity, now)
	})
	if err != nil {
		return nil, s.commandError("cart_update_failed", userID, productID, err)
	}

	return s.refresh(userID)
}

// RemoveItem 删除购物车项。幂等：删除不存在的项不是错误，返回原样投影。
func (s *CartService) RemoveItem(userID, productID uint) (*CartData, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "user_id", userID, "error", err)
		return nil, ErrCartPersistFailed
	}
	if err := s.cartRepo.DeleteItem(cart.ID, productID); err != nil {
		return nil, s.commandError("cart_remove_failed", userID, productID, err)
	}
	return s.refresh(userID)
}

// Clear 清空购物车全部项。幂等，购物车本身保留。
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "user_id", userID, "error", err)
		return ErrCartPersistFailed
	}
	if err := s.cartRepo.ClearByCart(cart.ID); err != nil {
		return s.commandError("cart_clear_failed", userID, 0, err)
	}
	return nil
}

// cartHasProduct 判断购物车预加载的项里是否含有该商品
func cartHasProduct(cart *models.Cart, productID uint) bool {
	for _, item := range cart.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// refresh 重新读取并组装投影
func (s *CartService) refresh(userID uint) (*CartData, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil || cart == nil {
		logger.Errorw("cart_refresh_failed", "user_id", userID, "error", err)
		return nil, ErrCartPersistFailed
	}
	return s.buildProjection(cart)
}

// buildProjection 拉取实时商品数据并构建投影。
// 商品行彻底不存在的购物车项触发一次清理任务；
// 软删除的商品行仍算存在，对应项保留并以不可售标记上报。
func (s *CartService) buildProjection(cart *models.Cart) (*CartData, error) {
	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.ListAnyByIDs(ids)
	if err != nil {
		logger.Errorw("cart_products_fetch_failed", "cart_id", cart.ID, "error", err)
		return nil, ErrCartPersistFailed
	}

	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	dangling := false
	for _, item := range cart.Items {
		if byID[item.ProductID] == nil {
			dangling = true
			break
		}
	}
	if dangling && s.queueClient != nil {
		if err := s.queueClient.EnqueueCartPrune(queue.CartPrunePayload{CartID: cart.ID}); err != nil {
			logger.Warnw("cart_prune_enqueue_failed", "cart_id", cart.ID, "error", err)
		}
	}

	return buildCartData(cart, byID), nil
}

// commandError 透传业务错误，持久化失败包装后仅记录内部细节
func (s *CartService) commandError(event string, userID, productID uint, err error) error {
	switch err.(type) {
	case *OutOfStockError, *InsufficientStockError:
		return err
	}
	switch err {
	case ErrProductNotFound, ErrCartItemNotFound, ErrInvalidQuantity, ErrInvalidUser:
		return err
	}
	logger.Errorw(event, "user_id", userID, "product_id", productID, "error", err)
	return ErrCartPersistFailed
}
