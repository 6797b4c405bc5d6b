package public

import (
	"github.com/shopnext/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getUserID 从鉴权中间件取当前用户ID，缺失时直接返回 401。
// 命令一律以显式参数携带操作者，不读任何全局状态。
func getUserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get("user_id")
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return 0, false
	}
	uid, ok := value.(uint)
	if !ok || uid == 0 {
		response.Unauthorized(c, "unauthorized")
		return 0, false
	}
	return uid, true
}
