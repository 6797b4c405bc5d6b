package service

import (
	"strings"
	"time"

	"github.com/shopnext/internal/config"
	"github.com/shopnext/internal/constants"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserJWTClaims 用户 JWT 载荷
type UserJWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// UserAuthService 用户认证服务
type UserAuthService struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UserAuthService {
	return &UserAuthService{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

// Login 校验邮箱密码并签发 token
func (s *UserAuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Errorw("user_login_fetch_failed", "email", email, "error", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(user.Status), constants.UserStatusActive) {
		return "", nil, ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Errorw("user_login_sign_failed", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		logger.Warnw("user_login_update_last_login_failed", "user_id", user.ID, "error", err)
	}
	return token, user, nil
}

func (s *UserAuthService) issueToken(user *models.User) (string, error) {
	expireHours := s.jwtCfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	claims := UserJWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}
