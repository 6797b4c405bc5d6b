package public

import (
	"errors"

	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLog 提供携带 request_id 的日志实例
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// respondCartError 将购物车业务错误映射到 HTTP 状态码：
// 引用不存在 404，库存类可恢复冲突 422，其余 500。
func respondCartError(c *gin.Context, err error) {
	var outOfStock *service.OutOfStockError
	var insufficient *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCartItemNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidQuantity):
		response.BadRequest(c, err.Error())
	case errors.As(err, &outOfStock):
		response.UnprocessableEntity(c, outOfStock.Error())
	case errors.As(err, &insufficient):
		response.UnprocessableEntity(c, insufficient.Error())
	default:
		requestLog(c).Errorw("cart_handler_error", "error", err)
		response.Internal(c, "Something went wrong")
	}
}
