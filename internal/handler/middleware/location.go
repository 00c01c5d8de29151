package middleware

import (
	"net/http"

	"zavvi-web/internal/handler/httperr"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/usecase/gate"

	"github.com/gin-gonic/gin"
)

const MsgLocationRequired = "Please select a location to continue"

// GateReader reports whether protected reads may run.
type GateReader interface {
	Ready() bool
	Modal() gate.Modal
}

// RequireLocation refuses protected routes with 428 while the location gate
// is closed; the modal snapshot tells the shell what to render.
func RequireLocation(g GateReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.Ready() {
			err := infra.NewError(infra.KindValidation, http.StatusPreconditionRequired, MsgLocationRequired, errs.ErrLocationRequired)
			httperr.AbortWithError(c, http.StatusPreconditionRequired, err, MsgLocationRequired, g.Modal())
			return
		}
		c.Next()
	}
}
