package controllers

import (
	"encoding/json"

	"github.com/Om-Rawte/AIMenuAssistant/pkg/resp"
	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	AI   *services.AIService
	Menu *services.MenuService
}

func NewAssistantController(ai *services.AIService, menu *services.MenuService) *AssistantController {
	return &AssistantController{AI: ai, Menu: menu}
}

// POST /assistant/chat
func (h *AssistantController) Chat(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
		Lang    string `json:"lang"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if body.Lang == "" {
		body.Lang = "en"
	}

	provider := utils.CurrentAIProvider(c)
	items, err := h.Menu.List(provider, "en")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	menuJSON, _ := json.Marshal(items)

	answer, err := h.AI.ChatResponse(provider, string(menuJSON), body.Message, body.Lang)
	if err != nil {
		// degrade to the canned message instead of a bare error page
		resp.OK(c, gin.H{"answer": services.FallbackMessage, "degraded": true})
		return
	}
	resp.OK(c, gin.H{"answer": answer})
}

// GET /assistant/recommendations
func (h *AssistantController) Recommendations(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")

	provider := utils.CurrentAIProvider(c)
	items, err := h.Menu.List(provider, "en")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	contextJSON, _ := json.Marshal(gin.H{"menu": items})

	recs, err := h.AI.Recommendations(provider, string(contextJSON), lang)
	if err != nil {
		resp.OK(c, gin.H{"recommendations": services.FallbackMessage, "degraded": true})
		return
	}
	resp.OK(c, gin.H{"recommendations": recs})
}
