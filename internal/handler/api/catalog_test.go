//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"zavvi-web/internal/domain/catalog"
	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/handler/api"
	resdto "zavvi-web/internal/handler/dto/response"
	"zavvi-web/internal/handler/middleware"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/tests/common/httptest"
	apimock "zavvi-web/tests/mock/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCatalog   *apimock.MockCatalogService
	mockLocations *apimock.MockLocationService
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = apimock.NewMockCatalogService(s.mockCtrl)
	s.mockLocations = apimock.NewMockLocationService(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockCatalog, s.mockLocations)

	s.router.GET("/categories", h.Categories)
	s.router.GET("/shops", h.Shops)
	s.router.GET("/shops/:id", h.Shop)
	s.router.GET("/shops/:id/deals", h.Deals)
	s.router.POST("/shops/:id/prefetch", h.Prefetch)
	s.router.DELETE("/cache", h.Invalidate)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestShopsDefaultToSelectedLocation() {
	s.mockLocations.EXPECT().SelectedLocationID().Return("pune").Times(2)
	s.mockCatalog.EXPECT().Shops(gomock.Any(), catalog.ShopQuery{Category: "food", Location: "pune"}).
		Return([]catalog.Shop{{ID: "s1", Name: "Cafe"}}, nil)
	s.mockCatalog.EXPECT().Shops(gomock.Any(), catalog.ShopQuery{Search: "tea", Location: "mumbai"}).
		Return([]catalog.Shop{}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shops?category=food", nil)
	var shops []catalog.Shop
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &shops)
	s.Len(shops, 1)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shops?search=tea&location=mumbai", nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &shops)
	s.Empty(shops)
}

func (s *CatalogHandlerTestSuite) TestErrorKindsMapToStatus() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "gate never opened", err: infra.NewError(infra.KindValidation, 0, "Please select a location to continue", errs.Mark(context.DeadlineExceeded, errs.ErrLocationRequired)), expectCode: http.StatusPreconditionRequired},
		{name: "session expired", err: infra.NewError(infra.KindAuthExpired, http.StatusUnauthorized, "Unauthorized", nil), expectCode: http.StatusUnauthorized},
		{name: "network", err: infra.NewError(infra.KindTransientNetwork, 0, "Network error. Please check your connection.", nil), expectCode: http.StatusServiceUnavailable},
		{name: "upstream", err: infra.NewError(infra.KindUpstream, http.StatusNotFound, "Shop not found", nil), expectCode: http.StatusBadGateway},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCatalog.EXPECT().Shop(gomock.Any(), "s1").Return(catalog.Shop{}, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shops/s1", nil)

			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, infra.MessageOf(tc.err, ""))
		})
	}
}

func (s *CatalogHandlerTestSuite) TestDealsAndCategories() {
	s.mockCatalog.EXPECT().DealsByShop(gomock.Any(), "s1").Return([]coupon.Deal{{ID: "d1", Title: "Half off"}}, nil)
	s.mockCatalog.EXPECT().Categories(gomock.Any()).Return([]catalog.Category{{ID: "c1", Name: "Food"}}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shops/s1/deals", nil)
	var deals []coupon.Deal
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &deals)
	s.Equal("d1", deals[0].ID)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/categories", nil)
	var cats []catalog.Category
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cats)
	s.Equal("Food", cats[0].Name)
}

func (s *CatalogHandlerTestSuite) TestPrefetchAndInvalidate() {
	s.mockCatalog.EXPECT().PrefetchShop(gomock.Any(), "s1")
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/shops/s1/prefetch", nil)
	s.Equal(http.StatusAccepted, w.Code)

	s.mockCatalog.EXPECT().Invalidate("shops_").Return(3)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cache?pattern=shops_", nil)
	var got resdto.InvalidateResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(3, got.Removed)
}
