package handlers

import (
	"club-review/helper"
	"club-review/middleware"
	"club-review/models"
	"club-review/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Param("club"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", comments)
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Bad request", h.Helper.EmptyJsonMap())
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	comment, err := h.commentService.AddComment(c.Param("club"), req, principal)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "success", models.CommentResponse{
		Author: principal.Username,
		Text:   comment.Text,
	})
}
