package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/core/auth"
	"go-shop-api/internal/core/mail"
	"go-shop-api/internal/domain"
	"go-shop-api/pkg/utils"
)

type AuthService struct {
	users  domain.UserRepository
	jwter  *auth.JWTer
	mailer mail.Mailer
	log    *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, mailer mail.Mailer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, mailer: mailer, log: log}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if existing != nil {
		return apperr.BadRequest("Email already registered")
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return apperr.Internal("hash password failed", err)
	}
	u := &domain.User{
		ID:             utils.NewID(),
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		HashedPassword: hashed,
		Role:           in.Role,
	}
	if err := s.users.Create(u); err != nil {
		// 并发兜底：唯一索引冲突按同一条业务错误返回
		if isDupKey(err) {
			return apperr.BadRequest("Email already registered")
		}
		return apperr.Internal("db error", err)
	}
	s.log.Info("user signed up", zap.String("uid", u.ID), zap.String("role", u.Role))
	return nil
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (*TokenPair, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	if !utils.CheckPassword(password, u.HashedPassword) {
		return nil, apperr.BadRequest("Incorrect password")
	}

	access, err := s.jwter.IssueAccess(u.ID, u.Role)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	refresh, err := s.jwter.IssueRefresh(u.ID, u.Role)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh 用 refresh token 换新的 access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwter.Parse(refreshToken, auth.TokenRefresh)
	if err != nil {
		return "", apperr.Unauthorized("Invalid or expired token")
	}
	access, err := s.jwter.IssueAccess(claims.UID, claims.Role)
	if err != nil {
		return "", apperr.Internal("issue token failed", err)
	}
	return access, nil
}

// ResetPassword 接受 access token（已登录改密）或 forgot-password 发出的 reset token
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.jwter.Parse(token, auth.TokenAccess)
	if err != nil {
		claims, err = s.jwter.Parse(token, auth.TokenReset)
	}
	if err != nil {
		return apperr.Unauthorized("Invalid or expired token")
	}

	u, err := s.users.FindByID(claims.UID)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal("hash password failed", err)
	}
	if err := s.users.UpdatePassword(u.ID, hashed); err != nil {
		return apperr.Internal("db error", err)
	}
	s.log.Info("password reset", zap.String("uid", u.ID))
	return nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}

	token, err := s.jwter.IssueReset(u.ID, u.Role)
	if err != nil {
		return apperr.Internal("issue token failed", err)
	}
	if err := s.mailer.SendPasswordReset(ctx, u.Email, token); err != nil {
		return apperr.Internal("send mail failed", err)
	}
	return nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
