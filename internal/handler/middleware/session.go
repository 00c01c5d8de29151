package middleware

import (
	"context"
	"net/http"

	"zavvi-web/internal/domain/user"
	"zavvi-web/internal/handler/httperr"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey = "user_id"

	// CurrentPathHeader carries the route the shell is showing.
	CurrentPathHeader = "X-Current-Path"

	MsgLoginRequired = "Please login to continue"
)

// SessionReader is the part of the session the middleware needs.
type SessionReader interface {
	IsLoggedIn(ctx context.Context) bool
	CurrentUser() *user.User
	TakePendingNavigation() (shared.Navigation, bool)
}

type SessionMiddleware struct {
	session SessionReader
}

func NewSessionMiddleware(session SessionReader) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// Attach records the shell's current route in the request context so auth
// failures can bookmark it, and exposes the session user to request logging.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		if path := c.GetHeader(CurrentPathHeader); path != "" {
			c.Request = c.Request.WithContext(shared.WithCurrentPath(c.Request.Context(), path))
		}

		httperr.SetNavigationSource(c, m.session)
		if u := m.session.CurrentUser(); u != nil {
			c.Set(ctxUserIDKey, u.ID)
		}
		c.Next()
	}
}

func (m *SessionMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.session.IsLoggedIn(c.Request.Context()) {
			err := infra.NewError(infra.KindAuthExpired, http.StatusUnauthorized, MsgLoginRequired, errs.ErrNotLoggedIn)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, MsgLoginRequired, nil)
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
