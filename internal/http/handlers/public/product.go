package public

import (
	"errors"
	"strconv"

	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 上架商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.ProductService.ListActive()
	if err != nil {
		requestLog(c).Errorw("product_list_handler_error", "error", err)
		response.Internal(c, "Something went wrong")
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProduct 上架商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.ProductService.GetActive(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		requestLog(c).Errorw("product_fetch_handler_error", "error", err)
		response.Internal(c, "Something went wrong")
		return
	}
	response.Success(c, gin.H{"product": product})
}
