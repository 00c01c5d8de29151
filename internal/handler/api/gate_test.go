//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/handler/api"
	resdto "zavvi-web/internal/handler/dto/response"
	"zavvi-web/internal/handler/middleware"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/usecase/gate"
	"zavvi-web/tests/common/httptest"
	apimock "zavvi-web/tests/mock/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GateHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockGate *apimock.MockGateService
}

func (s *GateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGate = apimock.NewMockGateService(s.mockCtrl)
	h := api.NewGateHandler(s.mockGate)

	s.router.GET("/gate", h.Get)
	s.router.POST("/gate/retry", h.Retry)
	s.router.POST("/gate/select", h.Select)
	s.router.POST("/gate/dismiss", h.Dismiss)
}

func (s *GateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGateHandlerSuite(t *testing.T) {
	suite.Run(t, new(GateHandlerTestSuite))
}

func blockedModal() gate.Modal {
	return gate.Modal{
		Visible:    true,
		Locations:  []location.Location{{ID: "l1", Name: "Pune"}},
		MaxRetries: 3,
	}
}

func (s *GateHandlerTestSuite) TestGet() {
	s.mockGate.EXPECT().State().Return(gate.StateBlocked)
	s.mockGate.EXPECT().Modal().Return(blockedModal())

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gate", nil)

	var got resdto.GateResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(gate.StateBlocked, got.State)
	s.Len(got.Modal.Locations, 1)
}

func (s *GateHandlerTestSuite) TestSelect() {
	type testCase struct {
		name         string
		body         any
		setupMock    func()
		expectCode   int
		expectInBody string
	}
	cases := []testCase{
		{
			name: "OK",
			body: map[string]any{"locationId": "l1"},
			setupMock: func() {
				s.mockGate.EXPECT().Select(gomock.Any(), "l1").Return(nil)
				s.mockGate.EXPECT().State().Return(gate.StateUnblocked)
				s.mockGate.EXPECT().Modal().Return(gate.Modal{})
			},
			expectCode: http.StatusOK,
		},
		{
			name: "NG: nothing selected",
			body: map[string]any{"locationId": ""},
			setupMock: func() {
				s.mockGate.EXPECT().Select(gomock.Any(), "").
					Return(infra.NewError(infra.KindValidation, 0, gate.MsgSelectRequired, errs.ErrLocationRequired))
			},
			expectCode:   http.StatusPreconditionRequired,
			expectInBody: gate.MsgSelectRequired,
		},
		{
			name: "NG: save failed",
			body: map[string]any{"locationId": "l1"},
			setupMock: func() {
				s.mockGate.EXPECT().Select(gomock.Any(), "l1").
					Return(infra.NewError(infra.KindUpstream, 0, gate.MsgSaveFailed, errs.ErrStorageUnavailable))
			},
			expectCode:   http.StatusBadGateway,
			expectInBody: gate.MsgSaveFailed,
		},
		{
			name:         "NG: malformed body",
			body:         "not-json-object",
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request format",
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.setupMock()
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/gate/select", tc.body)
			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, nil)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
		})
	}
}

func (s *GateHandlerTestSuite) TestDismissIsRejectedWhileBlocked() {
	s.mockGate.EXPECT().Dismiss("backdrop").
		Return(infra.NewError(infra.KindValidation, 0, gate.MsgDismissRejected, errs.ErrLocationRequired))
	s.mockGate.EXPECT().State().Return(gate.StateBlocked)
	s.mockGate.EXPECT().Modal().Return(blockedModal()).AnyTimes()

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/gate/dismiss", map[string]any{"reason": "backdrop"})

	body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, gate.MsgDismissRejected)
	var detail resdto.GateResponse
	s.Require().NoError(json.Unmarshal(body.Detail, &detail))
	s.Equal(gate.StateBlocked, detail.State)
}

func (s *GateHandlerTestSuite) TestDismissRejectsUnknownReason() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/gate/dismiss", map[string]any{"reason": "swipe"})
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *GateHandlerTestSuite) TestRetryBudgetExhausted() {
	modal := blockedModal()
	modal.Terminal = true
	modal.Error = gate.MsgMaxRetries
	s.mockGate.EXPECT().Retry(gomock.Any()).Return(infra.NewError(infra.KindDomainRejection, 0, gate.MsgMaxRetries, nil))
	s.mockGate.EXPECT().State().Return(gate.StateBlocked)
	s.mockGate.EXPECT().Modal().Return(modal).AnyTimes()

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/gate/retry", nil)

	body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, gate.MsgMaxRetries)
	s.Equal(string(infra.KindDomainRejection), body.Error.Kind)
}
