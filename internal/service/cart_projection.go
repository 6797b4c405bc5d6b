package service

import (
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/money"
)

// CartItemData 购物车项投影（仅用于响应，不落库）
type CartItemData struct {
	UUID           string `json:"uuid"`
	ProductID      uint   `json:"product_id"`
	ProductName    string `json:"product_name"`
	ProductSKU     string `json:"product_sku"`
	ProductImage   string `json:"product_image"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`
	TotalPrice     int64  `json:"total_price"`
	AvailableStock int    `json:"available_stock"`
	IsAvailable    bool   `json:"is_available"`

	hasStockIssue bool
}

// UnitPriceFormatted 格式化单价
func (d CartItemData) UnitPriceFormatted(symbol string) string {
	return money.Format(d.UnitPrice, symbol)
}

// TotalPriceFormatted 格式化小计
func (d CartItemData) TotalPriceFormatted(symbol string) string {
	return money.Format(d.TotalPrice, symbol)
}

// CartData 购物车投影，每次读取重新计算，不做缓存
type CartData struct {
	UUID                string         `json:"uuid"`
	UserID              uint           `json:"user_id"`
	Items               []CartItemData `json:"items"`
	TotalItems          int            `json:"total_items"`
	Subtotal            int64          `json:"subtotal"`
	TotalAmount         int64          `json:"total_amount"`
	HasStockIssues      bool           `json:"has_stock_issues"`
	HasUnavailableItems bool           `json:"has_unavailable_items"`
}

// TotalAmountInfo 总金额展示信息
func (d CartData) TotalAmountInfo(symbol string) money.Info {
	return money.NewInfo(d.TotalAmount, symbol)
}

// SubtotalFormatted 格式化小计
func (d CartData) SubtotalFormatted(symbol string) string {
	return money.Format(d.Subtotal, symbol)
}

// buildCartData 用持久化状态 + 实时目录数据组装投影。
// has_stock_issues 对照商品当前库存做实时判断，与存量单价快照无关；
// 目录侧变更只以标记上报，不回写购物车。
func buildCartData(cart *models.Cart, products map[uint]*models.Product) *CartData {
	data := &CartData{
		UUID:   cart.UUID,
		UserID: cart.UserID,
		Items:  make([]CartItemData, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		product := products[item.ProductID]
		itemData := CartItemData{
			UUID:       item.UUID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: int64(item.Quantity) * item.UnitPrice,
		}
		if product != nil {
			itemData.ProductName = product.Name
			itemData.ProductSKU = product.SKU
			itemData.ProductImage = product.Image
			itemData.AvailableStock = product.StockQuantity
			itemData.IsAvailable = product.IsSellable()
			itemData.hasStockIssue = item.Quantity > product.StockQuantity
		}

		data.Items = append(data.Items, itemData)
		data.TotalItems += item.Quantity
		data.Subtotal += itemData.TotalPrice
		if itemData.hasStockIssue {
			data.HasStockIssues = true
		}
		if !itemData.IsAvailable {
			data.HasUnavailableItems = true
		}
	}

	// 本层不计税费与运费
	data.TotalAmount = data.Subtotal
	return data
}
