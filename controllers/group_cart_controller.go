package controllers

import (
	"github.com/Om-Rawte/AIMenuAssistant/pkg/resp"
	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/gin-gonic/gin"
)

type GroupCartController struct{ Svc *services.GroupCartService }

func NewGroupCartController(s *services.GroupCartService) *GroupCartController {
	return &GroupCartController{Svc: s}
}

func (h *GroupCartController) session(c *gin.Context) (*services.GroupSession, bool) {
	tableID := utils.CurrentTableID(c)
	userID := utils.CurrentUserID(c)
	if tableID == 0 || userID == "" {
		resp.Unauthorized(c, "unauthorized")
		return nil, false
	}
	sess, err := h.Svc.Session(tableID, userID)
	if err != nil {
		resp.ServerError(c, err)
		return nil, false
	}
	return sess, true
}

// POST /group/items
func (h *GroupCartController) AddItem(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := sess.AddItem(body.MenuItemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	// an unknown menu id is a silent no-op, so the cart is the answer either way
	resp.Created(c, gin.H{"cart": sess.Cart()})
}

// POST /group/ready
func (h *GroupCartController) Ready(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := sess.Ready(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sess.Status())
}

// GET /group/status
func (h *GroupCartController) Status(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	resp.OK(c, gin.H{"status": sess.Status(), "cart": sess.Cart()})
}

// POST /group/leave
func (h *GroupCartController) Leave(c *gin.Context) {
	tableID := utils.CurrentTableID(c)
	userID := utils.CurrentUserID(c)
	if tableID == 0 || userID == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	h.Svc.Leave(tableID, userID)
	resp.OK(c, gin.H{"left": true})
}
