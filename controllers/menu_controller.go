package controllers

import (
	"github.com/Om-Rawte/AIMenuAssistant/pkg/resp"
	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu?lang=es
func (h *MenuController) List(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	items, err := h.Svc.List(utils.CurrentAIProvider(c), lang)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
