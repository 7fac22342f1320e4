package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/service"
	resp "go-shop-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Mount(g *gin.RouterGroup) {
	g.POST("/signup", h.signup)
	g.POST("/signin", h.signin)
	g.POST("/refresh", h.refresh)
	g.POST("/reset-password", h.resetPassword)
	g.POST("/forgot-password", h.forgotPassword)
}

type signupIn struct {
	Name     string `json:"name" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
}

func (h *AuthHandler) signup(c *gin.Context) {
	var in signupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	if err := h.svc.Signup(c.Request.Context(), service.SignupInput{
		Name: in.Name, Email: in.Email, Password: in.Password, Role: in.Role,
	}); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User created successfully"})
}

type signinIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) signin(c *gin.Context) {
	var in signinIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	pair, err := h.svc.Signin(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, pair)
}

type refreshIn struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) refresh(c *gin.Context) {
	var in refreshIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	access, err := h.svc.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"access_token": access})
}

type resetIn struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// reset-password 自己解 Authorization 头：access 和 reset 两种 token 都认
func (h *AuthHandler) resetPassword(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		resp.Fail(c, apperr.Unauthorized("Missing token"))
		return
	}
	var in resetIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), token, in.NewPassword); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Password updated successfully"})
}

type forgotIn struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) forgotPassword(c *gin.Context) {
	var in forgotIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), in.Email); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Password reset email sent"})
}
