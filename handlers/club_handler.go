package handlers

import (
	"club-review/helper"
	"club-review/middleware"
	"club-review/models"
	"club-review/services"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubService services.ClubService
	Helper      *helper.HTTPHelper
}

func NewClubHandler(clubService services.ClubService, h *helper.HTTPHelper) *ClubHandler {
	return &ClubHandler{clubService: clubService, Helper: h}
}

func (h *ClubHandler) GetClubs(c *gin.Context) {
	var params models.ClubListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Bad request", h.Helper.EmptyJsonMap())
		return
	}

	clubs, err := h.clubService.SearchClubs(params.Search)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", gin.H{"clubs": clubs})
}

// CreateClub accepts either a JSON body or form fields.
func (h *ClubHandler) CreateClub(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req models.CreateClubRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Bad request", h.Helper.EmptyJsonMap())
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	club, err := h.clubService.CreateClub(req, principal)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", models.NewClubResponse(club))
}

func (h *ClubHandler) PatchClub(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req models.PatchClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Bad request", h.Helper.EmptyJsonMap())
		return
	}

	club, err := h.clubService.PatchClub(c.Param("code"), req, principal)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", models.NewClubResponse(club))
}

func (h *ClubHandler) GetClubsByTag(c *gin.Context) {
	clubs, err := h.clubService.ClubsByTag(c.Param("tag"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", gin.H{"clubs": clubs})
}
