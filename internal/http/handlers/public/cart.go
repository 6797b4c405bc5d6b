package public

import (
	"strconv"

	"github.com/shopnext/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	data, err := h.CartService.GetCart(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, data)
}

// AddCartItem 加购（同商品合并数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	data, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, data)
}

// UpdateCartItem 更新购物车项数量（整体替换）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	data, err := h.CartService.UpdateItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, data)
}

// DeleteCartItem 删除购物车项（幂等）
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	data, err := h.CartService.RemoveItem(uid, uint(productID))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, data)
}

// ClearCart 清空购物车（幂等，成功时无响应体）
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondCartError(c, err)
		return
	}
	response.NoContent(c)
}
