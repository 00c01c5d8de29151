package middleware

import (
	"log/slog"
	"net/http"

	"zavvi-web/internal/handler/httperr"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgInternal   = "Internal server error"
	maxStackLines = 12
)

// ErrorHandler renders whatever a handler left in c.Errors when nothing was written.
// Public errors already carry their response; private ones are mapped by kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if renderLastError(c) {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalResponse())
	}
}

func renderLastError(c *gin.Context) bool {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		switch {
		case e.IsType(gin.ErrorTypePublic):
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return true
			}
		case e.IsType(gin.ErrorTypePrivate):
			httperr.Abort(c, e.Err)
			return true
		}
	}
	return false
}

// CustomRecovery turns a panic into the standard error envelope.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				attrs := []any{
					slog.Any("error", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("view", c.GetHeader(CurrentPathHeader)),
					slog.String("request_id", GetRequestID(c)),
				}
				if err, ok := rec.(error); ok {
					attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), maxStackLines)))
				}
				logger.Error("Recovered from panic", attrs...)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalResponse())
			}
		}()
		c.Next()
	}
}

func internalResponse() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = msgInternal
	resp.Error.Kind = infra.KindUpstream
	return resp
}
