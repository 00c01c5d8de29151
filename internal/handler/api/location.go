package api

import (
	"net/http"

	reqdto "zavvi-web/internal/handler/dto/request"
	resdto "zavvi-web/internal/handler/dto/response"
	"zavvi-web/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locations LocationService
}

func NewLocationHandler(locations LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// @Summary Selected location
// @Tags location
// @Produce json
// @Success 200 {object} resdto.LocationResponse
// @Router /location [get]
func (h *LocationHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.LocationResponse{
		Location:   h.locations.SelectedLocation(),
		FirstVisit: h.locations.IsFirstVisit(c.Request.Context()),
	})
}

// @Summary Replace the selected location
// @Tags location
// @Accept json
// @Produce json
// @Param request body reqdto.SetLocationRequest true "Location"
// @Success 200 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Router /location [put]
func (h *LocationHandler) Put(c *gin.Context) {
	var req reqdto.SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.locations.SetSelectedLocation(c.Request.Context(), req.ToDomain()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.Get(c)
}

// @Summary Forget the selected location
// @Description Clears the selection and the first-visit flag; the gate closes again
// @Tags location
// @Success 204 "No Content"
// @Router /location [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.locations.ClearLocationData(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
