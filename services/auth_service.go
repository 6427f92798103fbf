package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/pkg/cache"
	"dishpatch-be/pkg/mailer"
	"dishpatch-be/repository"
	"dishpatch-be/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cache    cache.Cache
	Mailer   mailer.Mailer
	Log      *zap.Logger

	jwtSecret string
	jwtTTL    time.Duration
	otpTTL    time.Duration
}

func NewAuthService(
	userRepo *repository.UserRepository,
	c cache.Cache,
	m mailer.Mailer,
	log *zap.Logger,
	jwtSecret string,
	jwtTTL, otpTTL time.Duration,
) *AuthService {
	return &AuthService{
		UserRepo: userRepo, Cache: c, Mailer: m, Log: log,
		jwtSecret: jwtSecret, jwtTTL: jwtTTL, otpTTL: otpTTL,
	}
}

type RegisterIn struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer, err := s.UserRepo.FindRoleByName(entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:        strings.TrimSpace(in.Name),
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		Roles:       []entity.Role{*customer},
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.Mailer.Send(user.Email, "Welcome",
		fmt.Sprintf("Hi %s, your account is ready.", user.Name)); err != nil {
		s.Log.Warn("welcome mail failed", zap.String("to", user.Email), zap.Error(err))
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.RoleNames(), user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.UserRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// ----- OTP password reset -----

func otpKey(email string) string { return "otp:" + email }

// SendOTP stores a short-lived code in the cache and mails it.
func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.UserRepo.FindByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return err
	}

	code, err := utils.GenerateOTP(6)
	if err != nil {
		return err
	}
	if err := s.Cache.Set(ctx, otpKey(email), code, s.otpTTL); err != nil {
		return err
	}
	if err := s.Mailer.Send(email, "Your verification code",
		fmt.Sprintf("Your one-time code is %s. It expires in %d minutes.", code, int(s.otpTTL.Minutes()))); err != nil {
		return apperr.Internal("could not send verification code")
	}
	return nil
}

// ResetPassword consumes the OTP and sets the new password.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	stored, err := s.Cache.Get(ctx, otpKey(email))
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return apperr.BadRequest("code expired or not requested")
		}
		return err
	}
	if stored != code {
		return apperr.BadRequest("invalid code")
	}
	if err := s.Cache.Del(ctx, otpKey(email)); err != nil {
		s.Log.Warn("otp cleanup failed", zap.String("email", email), zap.Error(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(email, string(hashed)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return err
	}
	return nil
}
