package handlers

import (
	"fmt"

	"club-review/helper"
	"club-review/middleware"
	"club-review/models"
	"club-review/services"
	"club-review/session"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Param("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", profile)
}

// PatchUser updates the logged-in user and rewrites the session when the
// username changed. The update is already committed at that point, so a
// failed session write is recorded on the request and the response still
// reports success; the old session keeps the same user id.
func (h *UserHandler) PatchUser(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req models.PatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Bad request", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.PatchUser(principal, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if user.Username != principal.Username {
		if err := session.SetLoginUser(c, user.Principal()); err != nil {
			_ = c.Error(fmt.Errorf("rewrite session after username change: %w", err))
		}
	}

	h.Helper.SendSuccess(c, "success", models.NewProfileResponse(user))
}

func (h *UserHandler) GetMailingList(c *gin.Context) {
	code := c.Param("code")

	emails, err := h.userService.MailingList(code)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", models.MailingListResponse{Code: code, Emails: emails})
}
