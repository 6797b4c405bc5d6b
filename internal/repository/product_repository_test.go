package repository

import (
	"testing"

	"github.com/shopnext/internal/models"
)

func TestCreateProduct_PersistsInactiveFlag(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewProductRepository(db)

	inactive := models.Product{
		Name: "Retired Webcam", SKU: "CAM-R", Price: 5990, StockQuantity: 3, IsActive: false,
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("create inactive product failed: %v", err)
	}

	reloaded, err := repo.GetByID(inactive.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded == nil {
		t.Fatalf("expected product row, got nil")
	}
	if reloaded.IsActive {
		t.Fatalf("expected is_active=false to persist, stored row is active")
	}
	if reloaded.IsSellable() {
		t.Fatalf("inactive product must not be sellable")
	}

	active, err := repo.ListActive()
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	for _, product := range active {
		if product.ID == inactive.ID {
			t.Fatalf("inactive product must not appear in active listing")
		}
	}
}

func TestListAnyByIDs_IncludesSoftDeletedRows(t *testing.T) {
	db := newCartRepoDB(t)
	repo := NewProductRepository(db)

	product := models.Product{
		Name: "Old Lamp", SKU: "LAMP-0", Price: 9900, StockQuantity: 2, IsActive: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, product.ID).Error; err != nil {
		t.Fatalf("soft delete product failed: %v", err)
	}

	// 常规读取带软删除过滤
	scoped, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if scoped != nil {
		t.Fatalf("expected scoped read to miss soft-deleted row, got %+v", scoped)
	}

	rows, err := repo.ListAnyByIDs([]uint{product.ID})
	if err != nil {
		t.Fatalf("list any by ids failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != product.ID {
		t.Fatalf("expected soft-deleted row to be returned, got %+v", rows)
	}
	if rows[0].IsSellable() {
		t.Fatalf("soft-deleted product must not be sellable")
	}
}
