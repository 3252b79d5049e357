package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"HRDesk/internal/cache"
	"HRDesk/internal/model"
	"HRDesk/internal/model/dto"
	pkgerrors "HRDesk/pkg/errors"
	"HRDesk/pkg/form"
	"HRDesk/pkg/logger"
	"HRDesk/pkg/snowflake"
	"HRDesk/pkg/token"
	"HRDesk/storage/database"
	"HRDesk/utils"
)

// api 中对外暴露的 account_id 是 public_id

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

var signUpRules = []form.Rule{
	{Field: "full_name", Kind: form.Name},
	{Field: "email", Kind: form.Email},
	{Field: "password", Kind: form.Required},
}

var signInRules = []form.Rule{
	{Field: "email", Kind: form.Email},
	{Field: "password", Kind: form.Required},
}

// SignUp 注册 HR 账号，邮箱必须先通过 OTP 验证
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthUserSnapshot, error) {
	values := form.Values{Fields: map[string]string{
		"full_name": req.FullName,
		"email":     req.Email,
		"password":  req.Password,
	}}
	if err := form.Check(signUpRules, values); err != nil {
		return nil, pkgerrors.Validation(err)
	}

	db := database.DB()

	var existing model.HRAccount
	err := db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, pkgerrors.EmailAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	// 注册前邮箱必须先通过验证码校验
	verified, err := cache.IsEmailVerified(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email verification: %w", err)
	}
	if !verified {
		return nil, pkgerrors.EmailNotVerified
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public id: %w", err)
	}

	account := model.HRAccount{
		PublicID:      publicID,
		FullName:      req.FullName,
		Email:         req.Email,
		PasswordHash:  passwordHash,
		EmailVerified: true,
	}

	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := cache.ClearEmailVerified(ctx, req.Email); err != nil {
		logger.Logger.Warn("Failed to clear email verified marker",
			zap.String("email", req.Email),
			zap.Error(err),
		)
	}

	logger.Logger.Info("HR account created",
		zap.Int64("public_id", account.PublicID),
		zap.String("email", account.Email),
	)

	return &dto.AuthUserSnapshot{
		ID:            strconv.FormatInt(account.PublicID, 10),
		FullName:      account.FullName,
		Email:         account.Email,
		EmailVerified: account.EmailVerified,
	}, nil
}

// signInGate 登录闸门：先核密码再核邮箱验证状态
func signInGate(account *model.HRAccount, password string) error {
	if !utils.CheckPassword(account.PasswordHash, password) {
		return pkgerrors.CredentialsInvalid
	}
	if !account.EmailVerified {
		return pkgerrors.EmailNotVerified
	}
	return nil
}

// SignIn 邮箱密码登录，成功后签发 token pair
func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error) {
	values := form.Values{Fields: map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}}
	if err := form.Check(signInRules, values); err != nil {
		return nil, pkgerrors.Validation(err)
	}

	db := database.DB()

	var account model.HRAccount
	err := db.WithContext(ctx).Where("email = ?", req.Email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.CredentialsInvalid
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	if err := signInGate(&account, req.Password); err != nil {
		return nil, err
	}

	accountID := strconv.FormatInt(account.PublicID, 10)

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := cache.SetRefreshToken(ctx, accountID, refreshToken); err != nil {
		logger.Logger.Warn("Failed to store refresh token",
			zap.String("account_id", accountID),
			zap.Error(err),
		)
	}

	logger.Logger.Info("HR account signed in",
		zap.String("account_id", accountID),
	)

	return &dto.SignInResponse{
		User: dto.AuthUserSnapshot{
			ID:            accountID,
			FullName:      account.FullName,
			Email:         account.Email,
			EmailVerified: account.EmailVerified,
			Token:         accessToken,
			RefreshToken:  refreshToken,
			ExpiresIn:     expiresIn,
		},
	}, nil
}

// RefreshToken 校验 refresh token 并轮换 token pair
func (s *AuthService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	accountID, err := token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, pkgerrors.Unauthorized
	}

	if !cache.ValidateRefreshTokenExists(ctx, accountID, req.RefreshToken) {
		return nil, pkgerrors.Unauthorized
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := cache.SetRefreshToken(ctx, accountID, refreshToken); err != nil {
		logger.Logger.Warn("Failed to rotate refresh token",
			zap.String("account_id", accountID),
			zap.Error(err),
		)
	}

	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// SignOut 废弃 refresh token
func (s *AuthService) SignOut(ctx context.Context, accountID string) error {
	return cache.DeleteRefreshToken(ctx, accountID)
}

// GetAccount 按 public_id 取账号
func (s *AuthService) GetAccount(ctx context.Context, accountID string) (*model.HRAccount, error) {
	idInt, err := strconv.ParseInt(accountID, 10, 64)
	if err != nil {
		return nil, pkgerrors.InvalidAccountID
	}

	db := database.DB()

	var account model.HRAccount
	if err := db.WithContext(ctx).Where("public_id = ?", idInt).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Unauthorized
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &account, nil
}
