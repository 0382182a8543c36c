package auth

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/gas-booking/cmd/config"
	"github.com/muhammadheryan/gas-booking/constant"
	"github.com/muhammadheryan/gas-booking/model"
	cacherepo "github.com/muhammadheryan/gas-booking/repository/cache"
	userrepo "github.com/muhammadheryan/gas-booking/repository/user"
	"github.com/muhammadheryan/gas-booking/utils/errors"
	"github.com/muhammadheryan/gas-booking/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.ForgotPasswordResponse, error)
	Me(ctx context.Context, userID uint64) (*model.MeResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type AuthAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	cacheRepo cacherepo.Repository
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, cacheRepo cacherepo.Repository) AuthApp {
	return &AuthAppImpl{
		config:    config,
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
	}
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	if len(req.Name) < 3 {
		return nil, errors.SetCustomError(constant.ErrInvalidName)
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, errors.SetCustomError(constant.ErrInvalidEmail)
	}
	if !phoneRegex.MatchString(req.Phone) {
		return nil, errors.SetCustomError(constant.ErrInvalidPhone)
	}
	if !isValidPassword(req.Password) {
		return nil, errors.SetCustomError(constant.ErrWeakPassword)
	}

	// Check if user exists by email or phone
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.Auth.BcryptCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	}

	if _, err = s.userRepo.Create(ctx, userEntity); err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// No token at registration; the user logs in afterwards.
	return &model.RegisterResponse{
		Message: "user registered successfully",
	}, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.findByEmailOrPhone(ctx, req.EmailOrPhone)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, err := s.generateJWT(user.ID, s.config.Auth.TokenTTL)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Message: "login successful",
		Token:   token,
		User: model.UserProfile{
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
	}, nil
}

// ForgotPassword issues a short-lived reset token straight back to the
// caller. No delivery channel exists and no endpoint consumes the token;
// the password itself is never changed here.
func (s *AuthAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.ForgotPasswordResponse, error) {
	user, err := s.findByEmailOrPhone(ctx, req.EmailOrPhone)
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	resetToken, err := s.generateJWT(user.ID, s.config.Auth.ResetTokenTTL)
	if err != nil {
		logger.Error("[ForgotPassword] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ForgotPasswordResponse{
		Message:    "reset token generated, use it to reset password",
		ResetToken: resetToken,
	}, nil
}

func (s *AuthAppImpl) Me(ctx context.Context, userID uint64) (*model.MeResponse, error) {
	if cached, err := s.cacheRepo.GetProfile(ctx, userID); err != nil {
		logger.Warn("[Me] err cacheRepo.GetProfile", zap.String("error", err.Error()))
	} else if cached != nil {
		return &model.MeResponse{User: *cached}, nil
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Me] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrProfileNotFound)
	}

	profile := model.UserProfile{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}

	if err := s.cacheRepo.SetProfile(ctx, userID, &profile, s.config.Redis.ProfileTTL); err != nil {
		logger.Warn("[Me] err cacheRepo.SetProfile", zap.String("error", err.Error()))
	}

	return &model.MeResponse{User: profile}, nil
}

// ValidateToken verifies signature and expiry against the configured secret
// and returns the encoded user ID. No server-side state is consulted.
func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	return userID, nil
}

func (s *AuthAppImpl) findByEmailOrPhone(ctx context.Context, identifier string) (*model.UserEntity, error) {
	filter := &model.UserFilter{}
	if isEmail(identifier) {
		filter.Email = identifier
	} else {
		filter.Phone = identifier
	}
	return s.userRepo.Get(ctx, filter)
}

// generateJWT creates a signed token for the user with the given lifetime
func (s *AuthAppImpl) generateJWT(userID uint64, ttl time.Duration) (string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.ContainsRune(identifier, '@')
}

const passwordSpecials = "!@#$%^&*"

// isValidPassword enforces the registration password policy: at least 6
// characters drawn from letters, digits and the special set, with at least
// one digit and one special character.
func isValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}

	return hasDigit && hasSpecial
}
