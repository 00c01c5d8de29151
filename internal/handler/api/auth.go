package api

import (
	"net/http"

	reqdto "zavvi-web/internal/handler/dto/request"
	resdto "zavvi-web/internal/handler/dto/response"
	"zavvi-web/internal/handler/httperr"
	"zavvi-web/internal/handler/middleware"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	session SessionService
}

func NewAuthHandler(session SessionService) *AuthHandler {
	return &AuthHandler{session: session}
}

// @Summary Send login OTP
// @Tags auth
// @Accept json
// @Param request body reqdto.SendOTPRequest true "Mobile number"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /auth/otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req reqdto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.session.SendOTP(c.Request.Context(), req.Mobile); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Verify OTP and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "Mobile number and OTP"
// @Success 200 {object} resdto.VerifyOTPResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	complete, err := h.session.VerifyOTP(c.Request.Context(), req.Mobile, req.OTP)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.VerifyOTPResponse{
		ProfileComplete: complete,
		User:            h.session.CurrentUser(),
	})
}

// @Summary Register a new user
// @Tags auth
// @Accept json
// @Param request body reqdto.RegisterRequest true "Profile"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.session.Register(c.Request.Context(), req.ToDomain()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Logout
// @Description Ends the session; the response says where to navigate
// @Tags auth
// @Produce json
// @Success 200 {object} shared.Navigation
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Logout(c.Request.Context()))
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u := h.session.CurrentUser()
	if u == nil {
		err := infra.NewError(infra.KindAuthExpired, http.StatusUnauthorized, middleware.MsgLoginRequired, errs.ErrNotLoggedIn)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, middleware.MsgLoginRequired, nil)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary Update the profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} user.User
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	u, err := h.session.UpdateProfile(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary Consume the post-login redirect
// @Description Returns the view bookmarked by the last session expiry, once
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.RedirectResponse
// @Success 204 "No bookmark"
// @Router /auth/redirect [get]
func (h *AuthHandler) Redirect(c *gin.Context) {
	path, ok := h.session.ConsumeLoginRedirect(c.Request.Context())
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.RedirectResponse{Path: path})
}
