package public

import (
	"errors"

	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	token, user, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case errors.Is(err, service.ErrUserDisabled):
			response.Unauthorized(c, err.Error())
		default:
			requestLog(c).Errorw("user_login_handler_error", "error", err)
			response.Internal(c, "Something went wrong")
		}
		return
	}
	response.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}
