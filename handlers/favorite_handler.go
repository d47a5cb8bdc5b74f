package handlers

import (
	"club-review/helper"
	"club-review/middleware"
	"club-review/models"
	"club-review/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
	Helper          *helper.HTTPHelper
}

func NewFavoriteHandler(favoriteService services.FavoriteService, h *helper.HTTPHelper) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, Helper: h}
}

func (h *FavoriteHandler) GetFavoriteCount(c *gin.Context) {
	count, err := h.favoriteService.FavoriteCount(c.Param("club"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", models.FavoriteCountResponse{FavoriteCount: count})
}

func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)
	club := c.Param("club")

	favorited, err := h.favoriteService.ToggleFavorite(club, principal)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", models.FavoriteToggleResponse{Club: club, Favorited: favorited})
}
