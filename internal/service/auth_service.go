package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginResult struct {
	AccessToken string
	ExpiresIn   int // 秒
	User        *model.User
}

type IAuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type AuthService struct {
	userService IUserService
	tokenMaker  token.Maker
}

func NewAuthService(userService IUserService, tokenMaker token.Maker) IAuthService {
	if userService == nil || tokenMaker == nil {
		panic("auth service dependencies cannot be nil")
	}
	return &AuthService{
		userService: userService,
		tokenMaker:  tokenMaker,
	}
}

// Signup 註冊新用戶，一律為customer角色
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:       name,
		UserEmail:      email,
		HashedPassword: string(hash),
		Role:           string(constants.RoleCustomer),
	}
	return s.userService.CreateUser(ctx, user)
}

// Login 驗證帳密並簽發帶有用戶身份與角色的token
// 帳號不存在與密碼錯誤回傳相同錯誤，不洩漏帳號是否存在
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	duration := time.Duration(constants.AccessTokenDuration) * time.Hour
	accessToken, err := s.tokenMaker.CreateToken(user.UserID, user.Role, duration)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		ExpiresIn:   int(duration.Seconds()),
		User:        user,
	}, nil
}
