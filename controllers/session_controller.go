package controllers

import (
	"errors"

	"github.com/Om-Rawte/AIMenuAssistant/pkg/resp"
	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/gin-gonic/gin"
)

type SessionController struct{ Svc *services.SessionService }

func NewSessionController(s *services.SessionService) *SessionController {
	return &SessionController{Svc: s}
}

// POST /session/enter
func (h *SessionController) Enter(c *gin.Context) {
	var req services.EnterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Enter(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingTable):
			resp.BadRequest(c, "please scan a valid table QR code")
		case errors.Is(err, services.ErrUnknownTable), errors.Is(err, services.ErrUnknownReservation):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrReservationName):
			resp.Unauthorized(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, out)
}
