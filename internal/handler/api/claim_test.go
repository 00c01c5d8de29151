//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/handler/api"
	"zavvi-web/internal/handler/middleware"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/usecase/claim"
	"zavvi-web/internal/usecase/shared"
	"zavvi-web/tests/common/httptest"
	apimock "zavvi-web/tests/mock/api"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClaimHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockClaims  *apimock.MockClaimService
	mockCatalog *apimock.MockCatalogService
}

func (s *ClaimHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		if path := c.GetHeader(middleware.CurrentPathHeader); path != "" {
			c.Request = c.Request.WithContext(shared.WithCurrentPath(c.Request.Context(), path))
		}
		c.Next()
	})
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClaims = apimock.NewMockClaimService(s.mockCtrl)
	s.mockCatalog = apimock.NewMockCatalogService(s.mockCtrl)
	h := api.NewClaimHandler(s.mockClaims, s.mockCatalog)

	s.router.POST("/claims", h.Claim)
	s.router.GET("/claims/current", h.Current)
	s.router.GET("/claims/current/qr.png", h.QR)
	s.router.DELETE("/claims/current", h.Cancel)
}

func (s *ClaimHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}

var goldenDeal = coupon.Deal{ID: "d1", Title: "Half off", IsGoldenCoupon: true}

func (s *ClaimHandlerTestSuite) TestClaimReady() {
	ready := claim.Snapshot{
		AttemptID:  "a1",
		State:      claim.StateReady,
		DealID:     "d1",
		ShopID:     "s1",
		Code:       "ZV-1",
		CouponID:   "C1",
		Payload:    "https://admin.zavvi.co.in/redeem/C1?token=T1",
		Redeemable: true,
	}
	s.mockCatalog.EXPECT().Deal(gomock.Any(), "d1").Return(goldenDeal, nil)
	s.mockClaims.EXPECT().Claim(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req claim.Request) (claim.Snapshot, error) {
			s.Equal("d1", req.Deal.ID)
			s.Require().NotNil(req.LoadDeal)
			loaded, err := req.LoadDeal(ctx, req.Deal.ID)
			s.Require().NoError(err)
			s.Equal(goldenDeal, loaded)
			s.Equal("s1", req.ShopID)
			s.Equal("/shops/s1", req.CurrentURL)
			decision, err := req.Prompter.Confirm(ctx, claim.MsgLoginPrompt)
			s.Require().NoError(err)
			s.Equal(claim.Cancelled, decision)
			return ready, nil
		})

	w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/claims",
		map[string]any{"dealId": "d1", "shopId": "s1"},
		map[string]string{middleware.CurrentPathHeader: "/shops/s1"})

	var got claim.Snapshot
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	if diff := cmp.Diff(ready, got); diff != "" {
		s.T().Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func (s *ClaimHandlerTestSuite) TestClaimAlreadyClaimedCarriesNavigation() {
	failed := claim.Snapshot{
		AttemptID:  "a2",
		State:      claim.StateFailed,
		DealID:     "d1",
		Message:    claim.MsgAlreadyClaimed,
		Kind:       infra.KindDomainRejection,
		Navigation: &shared.Navigation{Path: claim.RedeemedCouponsPath, Notice: claim.MsgAlreadyClaimed},
	}
	s.mockClaims.EXPECT().Claim(gomock.Any(), gomock.Any()).
		Return(failed, infra.NewError(infra.KindDomainRejection, 0, claim.MsgAlreadyClaimed, errs.ErrAlreadyClaimed))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", map[string]any{"dealId": "d1", "confirmLogin": true})

	body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already have an active coupon")
	var detail claim.Snapshot
	s.Require().NoError(json.Unmarshal(body.Detail, &detail))
	s.Require().NotNil(detail.Navigation)
	s.Equal(claim.RedeemedCouponsPath, detail.Navigation.Path)
}

func (s *ClaimHandlerTestSuite) TestClaimCancelled() {
	s.mockClaims.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(claim.Snapshot{State: claim.StatePersisting}, claim.ErrCancelled)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", map[string]any{"dealId": "d1"})

	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Claim cancelled")
}

func (s *ClaimHandlerTestSuite) TestClaimRequiresDealID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", map[string]any{"shopId": "s1"})
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *ClaimHandlerTestSuite) TestCurrentAndQR() {
	s.mockClaims.EXPECT().Current().Return(claim.Snapshot{}, false)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/current", nil)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "No coupon claim in progress")

	png := []byte("\x89PNG\r\n\x1a\nfake")
	s.mockClaims.EXPECT().QR().Return(png, true)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/current/qr.png", nil)
	s.Equal(http.StatusOK, w.Code)
	httptest.AssertHeaders(s.T(), w, map[string]string{
		"Content-Type":  "image/png",
		"Cache-Control": "no-store",
	})
	s.Equal(png, w.Body.Bytes())
}

func (s *ClaimHandlerTestSuite) TestCancel() {
	gomock.InOrder(
		s.mockClaims.EXPECT().Cancel().Return(true),
		s.mockClaims.EXPECT().Cancel().Return(false),
	)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/claims/current", nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/claims/current", nil)
	s.Equal(http.StatusNotFound, w.Code)
}
