package main

import (
	"github.com/shopnext/internal/config"
	"github.com/shopnext/internal/constants"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/money"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加演示商品
	products := []models.Product{
		{
			Name:          "Wireless Mouse",
			SKU:           "SN-MOUSE-001",
			Image:         "/uploads/demo/mouse.png",
			Price:         money.ToMinorUnits(79.00),
			StockQuantity: 120,
			IsActive:      true,
		},
		{
			Name:          "Mechanical Keyboard",
			SKU:           "SN-KEYB-001",
			Image:         "/uploads/demo/keyboard.png",
			Price:         money.ToMinorUnits(350.00),
			StockQuantity: 40,
			IsActive:      true,
		},
		{
			Name:          "USB-C Hub",
			SKU:           "SN-HUB-001",
			Image:         "/uploads/demo/hub.png",
			Price:         money.ToMinorUnits(129.90),
			StockQuantity: 5,
			IsActive:      true,
		},
		{
			Name:          "Retired Webcam",
			SKU:           "SN-CAM-000",
			Image:         "/uploads/demo/webcam.png",
			Price:         money.ToMinorUnits(59.90),
			StockQuantity: 0,
			IsActive:      false,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("sku = ?", product.SKU).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.SKU, err)
			} else {
				stdLog.Printf("Created product: %s", product.SKU)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.SKU)
		}
	}

	// 添加演示用户
	demoEmail := "demo@example.com"
	var existingUser models.User
	if err := models.DB.Where("email = ?", demoEmail).First(&existingUser).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo123456"), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Fatalf("Failed to hash demo password: %v", err)
		}
		user := models.User{
			Email:        demoEmail,
			PasswordHash: string(hash),
			DisplayName:  "Demo User",
			Status:       constants.UserStatusActive,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create demo user: %v", err)
		} else {
			stdLog.Printf("Created demo user: %s (password: demo123456)", demoEmail)
		}
	} else {
		stdLog.Printf("Demo user already exists: %s", demoEmail)
	}

	stdLog.Printf("Seed finished")
}
