package controllers

import (
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "registered", user)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "logged in", gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "profile", user)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		PhoneNumber *string `json:"phoneNumber"`
		Address     *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	user, err := h.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "profile updated", user)
}

// POST /auth/otp/send
func (h *AuthController) SendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SendOTP(c.Request.Context(), req.Email); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "verification code sent", nil)
}

// POST /auth/otp/reset-password
func (h *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required,len=6"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "password updated", nil)
}
