package repository

import (
	"testing"
	"time"

	"github.com/shopnext/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCartRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestGetOrCreateByUser_CreatesOnceAndReuses(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewCartRepository(db)

	first, err := repo.GetOrCreateByUser(101)
	if err != nil {
		t.Fatalf("get or create cart failed: %v", err)
	}
	if first.ID == 0 || first.UUID == "" {
		t.Fatalf("expected persisted cart with uuid, got id=%d uuid=%q", first.ID, first.UUID)
	}
	if len(first.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(first.Items))
	}

	second, err := repo.GetOrCreateByUser(101)
	if err != nil {
		t.Fatalf("get or create cart again failed: %v", err)
	}
	if second.ID != first.ID || second.UUID != first.UUID {
		t.Fatalf("expected same cart on repeat access, got id=%d/%d uuid=%q/%q",
			first.ID, second.ID, first.UUID, second.UUID)
	}
}

func TestGetByUser_MissingReturnsNil(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetByUser(999)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart != nil {
		t.Fatalf("expected nil cart for unknown user, got id=%d", cart.ID)
	}
}

func TestCartItemLifecycle(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetOrCreateByUser(102)
	if err != nil {
		t.Fatalf("get or create cart failed: %v", err)
	}

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: 7,
		Quantity:  2,
		UnitPrice: 7900,
	}
	if err := repo.CreateItem(item); err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if item.UUID == "" {
		t.Fatalf("expected item uuid to be assigned")
	}

	locked, err := repo.GetItemForUpdate(cart.ID, 7)
	if err != nil {
		t.Fatalf("locking read failed: %v", err)
	}
	if locked == nil || locked.ID != item.ID || locked.Quantity != 2 {
		t.Fatalf("unexpected locked item: %+v", locked)
	}

	if err := repo.UpdateItemQuantity(item.ID, 5, time.Now()); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	updated, err := repo.GetItemForUpdate(cart.ID, 7)
	if err != nil {
		t.Fatalf("re-read item failed: %v", err)
	}
	if updated.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", updated.Quantity)
	}
	if updated.UnitPrice != 7900 {
		t.Fatalf("expected unit price snapshot to survive update, got %d", updated.UnitPrice)
	}

	if err := repo.DeleteItem(cart.ID, 7); err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	gone, err := repo.GetItemForUpdate(cart.ID, 7)
	if err != nil {
		t.Fatalf("read after delete failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected item removed, got %+v", gone)
	}

	// 删除不存在的项不是错误
	if err := repo.DeleteItem(cart.ID, 7); err != nil {
		t.Fatalf("repeat delete should be a no-op, got: %v", err)
	}
}

func TestClearByCart_RemovesItemsKeepsCart(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetOrCreateByUser(103)
	if err != nil {
		t.Fatalf("get or create cart failed: %v", err)
	}
	for _, productID := range []uint{1, 2, 3} {
		if err := repo.CreateItem(&models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  1,
			UnitPrice: 1000,
		}); err != nil {
			t.Fatalf("create item %d failed: %v", productID, err)
		}
	}

	if err := repo.ClearByCart(cart.ID); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	reloaded, err := repo.GetByUser(103)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if reloaded == nil {
		t.Fatalf("expected cart row to survive clear")
	}
	if len(reloaded.Items) != 0 {
		t.Fatalf("expected no items after clear, got %d", len(reloaded.Items))
	}

	// 幂等
	if err := repo.ClearByCart(cart.ID); err != nil {
		t.Fatalf("repeat clear should be a no-op, got: %v", err)
	}
}

func TestDeleteDanglingItems_RemovesOnlyMissingProducts(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewCartRepository(db)

	kept := models.Product{Name: "Keyboard", SKU: "KB-1", Price: 35000, StockQuantity: 10, IsActive: true}
	doomed := models.Product{Name: "Webcam", SKU: "WC-1", Price: 5990, StockQuantity: 10, IsActive: true}
	if err := db.Create(&kept).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&doomed).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	cart, err := repo.GetOrCreateByUser(104)
	if err != nil {
		t.Fatalf("get or create cart failed: %v", err)
	}
	for _, product := range []models.Product{kept, doomed} {
		if err := repo.CreateItem(&models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  1,
			UnitPrice: product.Price,
		}); err != nil {
			t.Fatalf("create item failed: %v", err)
		}
	}

	if err := db.Unscoped().Delete(&models.Product{}, doomed.ID).Error; err != nil {
		t.Fatalf("hard delete product failed: %v", err)
	}

	removed, err := repo.DeleteDanglingItems(cart.ID)
	if err != nil {
		t.Fatalf("delete dangling items failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected exactly 1 dangling item removed, got %d", removed)
	}

	reloaded, err := repo.GetByUser(104)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if len(reloaded.Items) != 1 || reloaded.Items[0].ProductID != kept.ID {
		t.Fatalf("expected only item for product %d to remain, got %+v", kept.ID, reloaded.Items)
	}
}

func TestDeleteDanglingItems_KeepsSoftDeletedProducts(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewCartRepository(db)

	delisted := models.Product{Name: "Old Lamp", SKU: "LAMP-D", Price: 9900, StockQuantity: 2, IsActive: true}
	if err := db.Create(&delisted).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	cart, err := repo.GetOrCreateByUser(105)
	if err != nil {
		t.Fatalf("get or create cart failed: %v", err)
	}
	if err := repo.CreateItem(&models.CartItem{
		CartID:    cart.ID,
		ProductID: delisted.ID,
		Quantity:  1,
		UnitPrice: delisted.Price,
	}); err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	// 软删除的商品行仍算存在，项不得被清理
	if err := db.Delete(&models.Product{}, delisted.ID).Error; err != nil {
		t.Fatalf("soft delete product failed: %v", err)
	}

	removed, err := repo.DeleteDanglingItems(cart.ID)
	if err != nil {
		t.Fatalf("delete dangling items failed: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected no items removed for soft-deleted product, got %d", removed)
	}

	reloaded, err := repo.GetByUser(105)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if len(reloaded.Items) != 1 || reloaded.Items[0].ProductID != delisted.ID {
		t.Fatalf("expected item to survive soft delete, got %+v", reloaded.Items)
	}
}
