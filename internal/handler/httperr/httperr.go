package httperr

import (
	"context"
	"errors"
	"net/http"

	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const navigationSourceKey = "navigation_source"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string          `json:"message"`
		Kind    infra.ErrorKind `json:"kind,omitempty"`
		Code    string          `json:"code,omitempty"`
	} `json:"error"`
	Navigation *shared.Navigation `json:"navigation,omitempty"`
	Detail     any                `json:"detail,omitempty"`
}

// NavigationSource yields the login navigation an auth failure produced.
type NavigationSource interface {
	TakePendingNavigation() (shared.Navigation, bool)
}

// SetNavigationSource makes the session's pending navigation available to Abort.
func SetNavigationSource(c *gin.Context, src NavigationSource) {
	c.Set(navigationSourceKey, src)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = infra.KindOf(err)
	resp.Detail = detail

	var e infra.Error
	if errors.As(err, &e) {
		resp.Error.Code = e.Code
	}
	if resp.Error.Kind == infra.KindAuthExpired {
		if src, ok := c.Get(navigationSourceKey); ok {
			if ns, ok := src.(NavigationSource); ok {
				if nav, ok := ns.TakePendingNavigation(); ok {
					resp.Navigation = &nav
				}
			}
		}
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status and message implied by the error kind.
func Abort(c *gin.Context, err error) {
	AbortWithError(c, StatusOf(err), err, infra.MessageOf(err, fallbackMessage(err)), nil)
}

func StatusOf(err error) int {
	if errs.Is(err, errs.ErrLocationRequired) {
		return http.StatusPreconditionRequired
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	switch infra.KindOf(err) {
	case infra.KindValidation:
		return http.StatusBadRequest
	case infra.KindAuthExpired:
		return http.StatusUnauthorized
	case infra.KindDomainRejection:
		return http.StatusConflict
	case infra.KindTransientNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func fallbackMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out. Please try again."
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	default:
		return "Something went wrong. Please try again."
	}
}
