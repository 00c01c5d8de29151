//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"zavvi-web/internal/domain/user"
	"zavvi-web/internal/handler/api"
	resdto "zavvi-web/internal/handler/dto/response"
	"zavvi-web/internal/handler/middleware"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/usecase/session"
	"zavvi-web/internal/usecase/shared"
	"zavvi-web/tests/common/httptest"
	"zavvi-web/tests/common/testutil"
	apimock "zavvi-web/tests/mock/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockSession *apimock.MockSessionService
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSession = apimock.NewMockSessionService(s.mockCtrl)
	h := api.NewAuthHandler(s.mockSession)

	s.router.POST("/auth/otp", h.SendOTP)
	s.router.POST("/auth/verify", h.VerifyOTP)
	s.router.POST("/auth/register", h.Register)
	s.router.POST("/auth/logout", h.Logout)
	s.router.GET("/auth/me", h.Me)
	s.router.PATCH("/auth/me", h.UpdateProfile)
	s.router.GET("/auth/redirect", h.Redirect)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	setupMock    func()
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestVerifyOTP() {
	base := map[string]any{"mobile": "9876543210", "otp": "123456"}
	asha := &user.User{ID: "u1", Name: "Asha", Mobile: "9876543210"}

	cases := []testCaseAuth{
		{
			name:   "OK",
			mutate: func(map[string]any) {},
			setupMock: func() {
				s.mockSession.EXPECT().VerifyOTP(gomock.Any(), "9876543210", "123456").Return(true, nil)
				s.mockSession.EXPECT().CurrentUser().Return(asha)
			},
			expectCode: http.StatusOK,
		},
		{
			name:         "NG: missing otp",
			mutate:       testutil.Field("otp", nil),
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request format",
		},
		{
			name:   "NG: invalid otp",
			mutate: testutil.Field("otp", "12"),
			setupMock: func() {
				s.mockSession.EXPECT().VerifyOTP(gomock.Any(), "9876543210", "12").
					Return(false, infra.NewError(infra.KindValidation, 0, session.MsgInvalidOTP, errs.ErrInvalidOTP))
			},
			expectCode:   http.StatusBadRequest,
			expectInBody: session.MsgInvalidOTP,
		},
		{
			name:   "NG: rejected by backend",
			mutate: func(map[string]any) {},
			setupMock: func() {
				s.mockSession.EXPECT().VerifyOTP(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, infra.NewError(infra.KindDomainRejection, http.StatusBadRequest, "OTP expired", nil))
			},
			expectCode:   http.StatusConflict,
			expectInBody: "OTP expired",
		},
		{
			name:   "NG: network",
			mutate: func(map[string]any) {},
			setupMock: func() {
				s.mockSession.EXPECT().VerifyOTP(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, infra.NewError(infra.KindTransientNetwork, 0, "Network error. Please check your connection.", nil))
			},
			expectCode:   http.StatusServiceUnavailable,
			expectInBody: "Network error",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), base, tc.mutate)
			tc.setupMock()

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/verify", body)

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
				return
			}
			var got resdto.VerifyOTPResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
			s.True(got.ProfileComplete)
			s.Equal("Asha", got.User.Name)
		})
	}
}

func (s *AuthHandlerTestSuite) TestSendOTP() {
	s.mockSession.EXPECT().SendOTP(gomock.Any(), "9876543210").Return(nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/otp", map[string]any{"mobile": "9876543210"})
	s.Equal(http.StatusNoContent, w.Code)

	s.mockSession.EXPECT().SendOTP(gomock.Any(), "123").
		Return(infra.NewError(infra.KindValidation, 0, session.MsgInvalidMobile, errs.ErrInvalidMobile))
	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/otp", map[string]any{"mobile": "123"})
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, session.MsgInvalidMobile)
}

func (s *AuthHandlerTestSuite) TestRegisterValidatesEmail() {
	body := map[string]any{"name": "Asha", "email": "not-an-email", "mobile": "9876543210"}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")

	body["email"] = "asha@example.com"
	s.mockSession.EXPECT().Register(gomock.Any(), user.User{Name: "Asha", Email: "asha@example.com", Mobile: "9876543210"}).Return(nil)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body)
	s.Equal(http.StatusCreated, w.Code)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.mockSession.EXPECT().CurrentUser().Return(nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil)
	body := httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, middleware.MsgLoginRequired)
	s.Equal(string(infra.KindAuthExpired), body.Error.Kind)

	s.mockSession.EXPECT().CurrentUser().Return(&user.User{ID: "u1", Name: "Asha"})
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil)
	var got user.User
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal("u1", got.ID)
}

func (s *AuthHandlerTestSuite) TestUpdateProfileOnlySendsPresentFields() {
	name := "Asha K"
	s.mockSession.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch user.Patch) (user.User, error) {
			s.Require().NotNil(patch.Name)
			s.Equal(name, *patch.Name)
			s.Nil(patch.Email)
			return user.User{ID: "u1", Name: name}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/auth/me", map[string]any{"name": name})

	var got user.User
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(name, got.Name)
}

func (s *AuthHandlerTestSuite) TestLogoutNavigatesHome() {
	s.mockSession.EXPECT().Logout(gomock.Any()).Return(shared.Navigation{Path: session.HomePath})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil)

	var nav shared.Navigation
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &nav)
	s.Equal("/", nav.Path)
}

func (s *AuthHandlerTestSuite) TestRedirectIsConsumedOnce() {
	gomock.InOrder(
		s.mockSession.EXPECT().ConsumeLoginRedirect(gomock.Any()).Return("/shops/s1", true),
		s.mockSession.EXPECT().ConsumeLoginRedirect(gomock.Any()).Return("", false),
	)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/redirect", nil)
	var got resdto.RedirectResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal("/shops/s1", got.Path)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/redirect", nil)
	s.Equal(http.StatusNoContent, w.Code)
}
