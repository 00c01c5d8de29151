package api

import (
	"net/http"

	reqdto "zavvi-web/internal/handler/dto/request"
	resdto "zavvi-web/internal/handler/dto/response"
	"zavvi-web/internal/handler/httperr"
	"zavvi-web/internal/infra"

	"github.com/gin-gonic/gin"
)

type GateHandler struct {
	gate GateService
}

func NewGateHandler(gate GateService) *GateHandler {
	return &GateHandler{gate: gate}
}

func (h *GateHandler) snapshot() resdto.GateResponse {
	return resdto.GateResponse{State: h.gate.State(), Modal: h.gate.Modal()}
}

// @Summary Location gate state
// @Description Current gate state and the location modal snapshot
// @Tags gate
// @Produce json
// @Success 200 {object} resdto.GateResponse
// @Router /gate [get]
func (h *GateHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// @Summary Retry loading locations
// @Tags gate
// @Produce json
// @Success 200 {object} resdto.GateResponse
// @Failure 409 {object} httperr.Response "retry budget exhausted"
// @Failure 503 {object} httperr.Response
// @Router /gate/retry [post]
func (h *GateHandler) Retry(c *gin.Context) {
	if err := h.gate.Retry(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, infra.MessageOf(err, h.gate.Modal().Error), h.snapshot())
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// @Summary Select a location
// @Tags gate
// @Accept json
// @Produce json
// @Param request body reqdto.SelectLocationRequest true "Location id or slug"
// @Success 200 {object} resdto.GateResponse
// @Failure 400 {object} httperr.Response
// @Router /gate/select [post]
func (h *GateHandler) Select(c *gin.Context) {
	var req reqdto.SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.gate.Select(c.Request.Context(), req.LocationID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// @Summary Dismiss the location modal
// @Description The modal cannot be closed without a selection while the gate is blocked
// @Tags gate
// @Accept json
// @Param request body reqdto.DismissRequest true "Dismiss reason"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /gate/dismiss [post]
func (h *GateHandler) Dismiss(c *gin.Context) {
	var req reqdto.DismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.gate.Dismiss(req.Reason); err != nil {
		httperr.AbortWithError(c, http.StatusConflict, err, infra.MessageOf(err, h.gate.Modal().Error), h.snapshot())
		return
	}
	c.Status(http.StatusNoContent)
}
