package controllers

import (
	"errors"
	"strconv"

	"github.com/Om-Rawte/AIMenuAssistant/pkg/resp"
	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id64 == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id64), true
}

// GET /orders/:id/status
func (h *OrderController) Status(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.Svc.Status(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /orders/:id/items/:itemId/status  (kitchen display)
func (h *OrderController) UpdateItemStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateItemStatus(orderID, itemID, body.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
