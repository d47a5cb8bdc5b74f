package handlers

import (
	"club-review/helper"
	"club-review/middleware"
	"club-review/models"
	"club-review/services"
	"club-review/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Bad request", h.Helper.EmptyJsonMap())
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	user, err := h.authService.Signup(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.startSession(c, user, "Signup success")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Bad request", h.Helper.EmptyJsonMap())
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	user, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.startSession(c, user, "Login success")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		h.Helper.SendServiceError(c, models.WriteError(err))
		return
	}

	h.Helper.SendSuccess(c, "Logout success", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	principal, exists := middleware.CurrentPrincipal(c)
	if !exists {
		h.Helper.SendServiceError(c, models.ErrLoginRequired)
		return
	}

	user, err := h.authService.GetUserByID(principal.UserID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", models.NewProfileResponse(user))
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User, message string) {
	if err := session.SetLoginUser(c, user.Principal()); err != nil {
		h.Helper.SendServiceError(c, models.WriteError(err))
		return
	}

	h.Helper.SendSuccess(c, message, models.NewProfileResponse(user))
}
