package api

import (
	"errors"
	"net/http"

	"zavvi-web/internal/domain/coupon"
	reqdto "zavvi-web/internal/handler/dto/request"
	"zavvi-web/internal/handler/httperr"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/usecase/claim"
	"zavvi-web/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const msgNoClaim = "No coupon claim in progress"

type ClaimHandler struct {
	claims  ClaimService
	catalog CatalogService
}

func NewClaimHandler(claims ClaimService, catalog CatalogService) *ClaimHandler {
	return &ClaimHandler{claims: claims, catalog: catalog}
}

// @Summary Claim a deal
// @Description Runs the claim flow. Anonymous users get a login navigation when confirmLogin is set.
// @Tags claims
// @Accept json
// @Produce json
// @Param request body reqdto.ClaimRequest true "Deal to claim"
// @Success 200 {object} claim.Snapshot
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response "already claimed, golden limits, expired deal"
// @Failure 428 {object} httperr.Response "no location selected"
// @Router /claims [post]
func (h *ClaimHandler) Claim(c *gin.Context) {
	var req reqdto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ctx := c.Request.Context()
	currentURL := req.CurrentURL
	if currentURL == "" {
		currentURL = shared.CurrentPath(ctx)
	}
	answer := claim.Cancelled
	if req.ConfirmLogin {
		answer = claim.Confirmed
	}

	snap, err := h.claims.Claim(ctx, claim.Request{
		Deal:       coupon.Deal{ID: req.DealID},
		LoadDeal:   h.catalog.Deal,
		ShopID:     req.ShopID,
		CurrentURL: currentURL,
		Prompter:   claim.Answer(answer),
	})
	switch {
	case errors.Is(err, claim.ErrCancelled):
		cancelled := infra.NewError(infra.KindDomainRejection, http.StatusConflict, "Claim cancelled", err)
		httperr.AbortWithError(c, http.StatusConflict, cancelled, "Claim cancelled", snap)
	case err != nil:
		httperr.AbortWithError(c, httperr.StatusOf(err), err, infra.MessageOf(err, claim.MsgGenerationFailed), snap)
	default:
		c.JSON(http.StatusOK, snap)
	}
}

// @Summary Current claim
// @Tags claims
// @Produce json
// @Success 200 {object} claim.Snapshot
// @Failure 404 {object} httperr.Response
// @Router /claims/current [get]
func (h *ClaimHandler) Current(c *gin.Context) {
	snap, ok := h.claims.Current()
	if !ok {
		abortNoClaim(c)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary QR image of the current claim
// @Tags claims
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /claims/current/qr.png [get]
func (h *ClaimHandler) QR(c *gin.Context) {
	png, ok := h.claims.QR()
	if !ok {
		abortNoClaim(c)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// @Summary Cancel the current claim
// @Description Releases the coupon shown to the user; a record being saved is still saved
// @Tags claims
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /claims/current [delete]
func (h *ClaimHandler) Cancel(c *gin.Context) {
	if !h.claims.Cancel() {
		abortNoClaim(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortNoClaim(c *gin.Context) {
	err := infra.NewError(infra.KindValidation, http.StatusNotFound, msgNoClaim, nil)
	httperr.AbortWithError(c, http.StatusNotFound, err, msgNoClaim, nil)
}
