package controllers

import (
	"github.com/Om-Rawte/AIMenuAssistant/pkg/resp"
	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/gin-gonic/gin"
)

type FeedbackController struct{ Svc *services.FeedbackService }

func NewFeedbackController(s *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Svc: s}
}

// POST /feedback
func (h *FeedbackController) Submit(c *gin.Context) {
	var body struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fb, err := h.Svc.Submit(utils.CurrentTableID(c), body.Rating, body.Comment)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, fb)
}
