package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"zavvi-web/internal/domain/user"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/backend"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/clock"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/pkg/jwt"
	"zavvi-web/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

//go:generate mockgen -source=session.go -destination=../../../tests/mock/session/auth_api.go -package=sessionmock

// AuthAPI is the slice of the backend the session needs.
type AuthAPI interface {
	SendOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, otp string) (backend.VerifyResult, error)
	Register(ctx context.Context, u user.User) (user.User, error)
	UpdateProfile(ctx context.Context, patch user.Patch) (user.User, error)
	Logout(ctx context.Context) error
}

const (
	LoginPath = "/login"
	HomePath  = "/"

	MsgSessionExpired = "Your session has expired. Please login again."
	MsgAccessDenied   = "Access denied. Please login again."
	MsgInvalidMobile  = "Please enter a valid 10-digit mobile number"
	MsgInvalidOTP     = "Please enter a valid 6-digit OTP"
)

// Store owns the session token, the session user and the redirect bookmark.
// It never holds its lock across a backend call: a 401 from that call
// re-enters the store through HandleAuthFailure.
type Store struct {
	api     AuthAPI
	storage storage.Store
	clock   clock.Clock
	logger  *slog.Logger

	mu          sync.Mutex
	user        *user.User
	redirectURL string
	// redirected is set once an auth failure has sent the user to login and
	// cleared by the next successful login.
	redirected bool
	pending    shared.Navigation
}

// New restores the persisted session. A corrupt user record drops the whole session.
func New(ctx context.Context, api AuthAPI, st storage.Store, clk clock.Clock, logger *slog.Logger) *Store {
	s := &Store{api: api, storage: st, clock: clk, logger: logger}

	_, hasToken, err := st.Get(ctx, storage.KeyToken)
	if err != nil || !hasToken {
		return s
	}
	var u user.User
	ok, err := storage.GetJSON(ctx, st, storage.KeyCurrentUser, &u)
	if err != nil {
		logger.Warn("Dropping unreadable stored session", slog.String("error", err.Error()))
		_ = storage.RemoveAll(ctx, st, storage.KeyCurrentUser, storage.KeyToken)
		return s
	}
	if ok {
		s.user = &u
	}
	return s
}

// IsLoggedIn requires a token, a user and an unexpired token. An expired or
// malformed token clears the session before returning false.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.storage.Get(ctx, storage.KeyToken)
	if err != nil || !ok || token == "" || s.user == nil {
		return false
	}
	if err := jwt.CheckExpiry(token, s.clock.Now()); err != nil {
		s.logger.Info("Session token expired, clearing session", slog.String("reason", err.Error()))
		s.clearLocked(ctx)
		return false
	}
	return true
}

// Token returns the stored bearer token, or "".
func (s *Store) Token(ctx context.Context) string {
	token, ok, err := s.storage.Get(ctx, storage.KeyToken)
	if err != nil || !ok {
		return ""
	}
	return token
}

// CurrentUser returns a copy of the session user, or nil.
func (s *Store) CurrentUser() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UpdateCurrentUser shallow-merges patch into the session user and persists it.
func (s *Store) UpdateCurrentUser(ctx context.Context, patch user.Patch) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return user.User{}, infra.WrapErr(s.logger, infra.KindValidation, "Please login to continue", errs.ErrNotLoggedIn)
	}
	merged := *s.user
	if err := copier.CopyWithOption(&merged, &patch, copier.Option{IgnoreEmpty: true}); err != nil {
		return user.User{}, errs.Wrap(err, "merge user patch")
	}
	if err := storage.SetJSON(ctx, s.storage, storage.KeyCurrentUser, merged); err != nil {
		return user.User{}, errs.Wrap(err, "persist current user")
	}
	s.user = &merged
	return merged, nil
}

// UpdateProfile sends patch to the backend and merges the accepted fields locally.
func (s *Store) UpdateProfile(ctx context.Context, patch user.Patch) (user.User, error) {
	if s.CurrentUser() == nil {
		return user.User{}, infra.WrapErr(s.logger, infra.KindValidation, "Please login to continue", errs.ErrNotLoggedIn)
	}
	updated, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		return user.User{}, err
	}

	var accepted user.Patch
	if err := copier.CopyWithOption(&accepted, &updated, copier.Option{IgnoreEmpty: true}); err != nil {
		return user.User{}, errs.Wrap(err, "read updated profile")
	}
	return s.UpdateCurrentUser(ctx, accepted)
}

func (s *Store) SendOTP(ctx context.Context, mobile string) error {
	m, err := user.NormalizeMobile(mobile)
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindValidation, MsgInvalidMobile, err)
	}
	if err := s.api.SendOTP(ctx, m); err != nil {
		return withFallbackMessage(err, "Failed to send OTP. Please try again.")
	}
	return nil
}

// VerifyOTP logs the user in. Token and user are stored as one unit: if the
// user cannot be stored the token is removed again and the old session kept.
func (s *Store) VerifyOTP(ctx context.Context, mobile, otp string) (profileComplete bool, err error) {
	m, err := user.NormalizeMobile(mobile)
	if err != nil {
		return false, infra.WrapErr(s.logger, infra.KindValidation, MsgInvalidMobile, err)
	}
	if err := user.ValidateOTP(otp); err != nil {
		return false, infra.WrapErr(s.logger, infra.KindValidation, MsgInvalidOTP, err)
	}

	res, err := s.api.VerifyOTP(ctx, m, strings.TrimSpace(otp))
	if err != nil {
		return false, withFallbackMessage(err, "Invalid OTP. Please try again.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prevToken, hadToken, _ := s.storage.Get(ctx, storage.KeyToken)
	if err := s.storage.Set(ctx, storage.KeyToken, res.Token); err != nil {
		return false, infra.WrapErr(s.logger, infra.KindUpstream, "Login failed. Please try again.", err)
	}
	if err := storage.SetJSON(ctx, s.storage, storage.KeyCurrentUser, res.User); err != nil {
		if hadToken {
			_ = s.storage.Set(ctx, storage.KeyToken, prevToken)
		} else {
			_ = s.storage.Remove(ctx, storage.KeyToken)
		}
		return false, infra.WrapErr(s.logger, infra.KindUpstream, "Login failed. Please try again.", err)
	}

	u := res.User
	s.user = &u
	s.redirected = false
	s.pending = shared.Navigation{}
	s.logger.Info("User logged in", slog.String("user_id", u.ID))
	return res.ProfileComplete, nil
}

func (s *Store) Register(ctx context.Context, u user.User) error {
	if _, err := user.NormalizeMobile(u.Mobile); err != nil {
		return infra.WrapErr(s.logger, infra.KindValidation, MsgInvalidMobile, err)
	}
	if _, err := s.api.Register(ctx, u); err != nil {
		return withFallbackMessage(err, "Registration failed")
	}
	return nil
}

// Logout ends the session explicitly and sends the user home.
func (s *Store) Logout(ctx context.Context) shared.Navigation {
	if s.IsLoggedIn(ctx) {
		if err := s.api.Logout(ctx); err != nil {
			s.logger.Warn("Backend logout failed", slog.String("error", err.Error()))
		}
	}
	s.ClearSession(ctx)
	return shared.Navigation{Path: HomePath}
}

// ClearSession drops the session without any navigation.
func (s *Store) ClearSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(ctx)
}

func (s *Store) clearLocked(ctx context.Context) {
	if err := storage.RemoveAll(ctx, s.storage, storage.KeyToken, storage.KeyCurrentUser); err != nil {
		s.logger.Warn("Failed to clear stored session", slog.String("error", err.Error()))
	}
	s.user = nil
	s.redirectURL = ""
}

func (s *Store) SetRedirectURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirectURL = url
}

func (s *Store) RedirectURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirectURL
}

func (s *Store) ClearRedirectURL() {
	s.SetRedirectURL("")
}

// HandleAuthFailure reacts to a 401/403 from any backend call: the session is
// cleared and, unless the user is already on the login view or has already
// been sent there, a login navigation is produced. A 401 also bookmarks
// currentPath so the login view can resume it.
func (s *Store) HandleAuthFailure(ctx context.Context, status int, currentPath string) (shared.Navigation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked(ctx)

	if strings.Contains(currentPath, LoginPath) || s.redirected {
		return shared.Navigation{}, false
	}

	nav := shared.Navigation{Path: LoginPath + "?sessionExpired=true", Notice: MsgSessionExpired}
	if status == http.StatusForbidden {
		nav = shared.Navigation{Path: LoginPath + "?accessDenied=true", Notice: MsgAccessDenied}
	} else if err := s.storage.Set(ctx, storage.KeyRedirectAfterLogin, currentPath); err != nil {
		s.logger.Warn("Failed to store login redirect", slog.String("error", err.Error()))
	}

	s.redirected = true
	s.pending = nav
	s.logger.Warn("Auth failure, redirecting to login", slog.Int("status", status), slog.String("from", currentPath))
	return nav, true
}

// TakePendingNavigation returns the login navigation produced by the last auth
// failure, once.
func (s *Store) TakePendingNavigation() (shared.Navigation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	nav := s.pending
	s.pending = shared.Navigation{}
	return nav, !nav.IsZero()
}

// ConsumeLoginRedirect reads and deletes the bookmark written on auth failure.
func (s *Store) ConsumeLoginRedirect(ctx context.Context) (string, bool) {
	path, ok, err := s.storage.Get(ctx, storage.KeyRedirectAfterLogin)
	if err != nil || !ok {
		return "", false
	}
	if err := s.storage.Remove(ctx, storage.KeyRedirectAfterLogin); err != nil {
		s.logger.Warn("Failed to remove login redirect", slog.String("error", err.Error()))
	}
	return path, path != ""
}

func withFallbackMessage(err error, fallback string) error {
	if infra.MessageOf(err, "") != "" {
		return err
	}
	return infra.NewError(infra.KindOf(err), 0, fallback, err)
}
