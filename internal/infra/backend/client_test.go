//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"zavvi-web/internal/domain/catalog"
	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/backend"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	store  storage.Store
	client *backend.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.store = storage.NewMemoryStore()

	cfg := config.NewTestConfig()
	cfg.Backend.BaseURL = s.server.URL + "/api/"
	cfg.Backend.ShortTimeout = 200 * time.Millisecond
	s.client = backend.NewClient(cfg, s.store, testutil.DiscardLogger())
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}

func (s *ClientTestSuite) TestResponseShapes() {
	s.mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":"c1","name":"Food"}]}`)
	})
	s.mux.HandleFunc("GET /api/shops", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"_id":"s1","name":"Cafe"}]`)
	})
	s.mux.HandleFunc("GET /api/shops/s1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"_id":"s1","name":"Cafe"}`)
	})
	s.mux.HandleFunc("GET /api/locations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"total":1,"locations":[{"id":"l1","name":"Pune"}]}}`)
	})

	ctx := context.Background()

	cats, err := s.client.Categories(ctx)
	s.Require().NoError(err)
	s.Equal([]catalog.Category{{ID: "c1", Name: "Food"}}, cats)

	shops, err := s.client.Shops(ctx, catalog.ShopQuery{})
	s.Require().NoError(err)
	s.Require().Len(shops, 1)
	s.Equal("s1", shops[0].ID)

	shop, err := s.client.Shop(ctx, "s1")
	s.Require().NoError(err)
	s.Equal("Cafe", shop.Name)

	locs, err := s.client.Locations(ctx)
	s.Require().NoError(err)
	s.Require().Len(locs, 1)
	s.Equal("Pune", locs[0].Name)
}

func (s *ClientTestSuite) TestSuccessFalseIsRejection() {
	s.mux.HandleFunc("GET /api/deals/d1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false,"message":"Deal not available"}`)
	})

	_, err := s.client.Deal(context.Background(), "d1")
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDomainRejection))
	s.Equal("Deal not available", infra.MessageOf(err, ""))
}

func (s *ClientTestSuite) TestBearerTokenAttached() {
	var got atomic.Value
	s.mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"user":{"id":"u1","name":"Asha","mobile":"9876543210"}}}`)
	})
	s.Require().NoError(s.store.Set(context.Background(), storage.KeyToken, "tok"))

	u, err := s.client.Me(context.Background())
	s.Require().NoError(err)
	s.Equal("u1", u.ID)
	s.Equal("Bearer tok", got.Load())
}

func (s *ClientTestSuite) TestAuthFailureHook() {
	s.mux.HandleFunc("GET /api/redeemed-coupons", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Token expired"}`)
	})

	var calls atomic.Int32
	var status atomic.Int32
	s.client.SetAuthFailureHandler(func(_ context.Context, st int) {
		calls.Add(1)
		status.Store(int32(st))
	})

	_, err := s.client.RedeemedCoupons(context.Background(), backend.RedeemedQuery{Status: coupon.StatusActive})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindAuthExpired))
	s.Equal(int32(1), calls.Load(), "auth errors are not retried")
	s.Equal(int32(http.StatusUnauthorized), status.Load())
}

func (s *ClientTestSuite) TestTransientErrorsRetried() {
	var hits atomic.Int32
	s.mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, `{"error":"busy"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[{"id":"c1","name":"Food"}]`)
	})

	cats, err := s.client.Categories(context.Background())
	s.Require().NoError(err)
	s.Len(cats, 1)
	s.Equal(int32(2), hits.Load())
}

func (s *ClientTestSuite) TestUpstreamErrorsNotRetried() {
	var hits atomic.Int32
	s.mux.HandleFunc("GET /api/shops/missing", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusNotFound, `{"error":{"message":"Shop not found","code":"NOT_FOUND"}}`)
	})

	_, err := s.client.Shop(context.Background(), "missing")
	s.Require().Error(err)
	s.Equal(infra.KindUpstream, infra.KindOf(err))
	s.Equal("Shop not found", infra.MessageOf(err, ""))
	var e infra.Error
	s.Require().ErrorAs(err, &e)
	s.Equal("NOT_FOUND", e.Code)
	s.Equal(http.StatusNotFound, e.Status)
	s.Equal(int32(1), hits.Load())
}

func (s *ClientTestSuite) TestTimeoutIsTransient() {
	release := make(chan struct{})
	defer close(release)
	s.mux.HandleFunc("GET /api/locations", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	_, err := s.client.Locations(context.Background())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindTransientNetwork))
}

func (s *ClientTestSuite) TestGenerateCouponKeepsFlags() {
	s.mux.HandleFunc("POST /api/coupons/generate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"success":false,"message":"Already redeemed","isGoldenCoupon":true,"alreadyRedeemed":true}`)
	})

	_, err := s.client.GenerateCoupon(context.Background(), "d1")
	s.Require().Error(err)
	var e infra.Error
	s.Require().ErrorAs(err, &e)
	s.True(e.Flag("isGoldenCoupon"))
	s.True(e.Flag("alreadyRedeemed"))
	s.Equal("Already redeemed", e.Message())
}

func (s *ClientTestSuite) TestVerifyOTP() {
	s.mux.HandleFunc("POST /api/auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["otp"] != "123456" {
			writeJSON(w, http.StatusOK, `{"success":false,"message":"Invalid OTP"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"success":true,"profileComplete":true,"data":{"token":"tok","user":{"id":"u1","mobile":"9876543210"}}}`)
	})

	res, err := s.client.VerifyOTP(context.Background(), "9876543210", "123456")
	s.Require().NoError(err)
	s.Equal("tok", res.Token)
	s.Equal("u1", res.User.ID)
	s.True(res.ProfileComplete)

	_, err = s.client.VerifyOTP(context.Background(), "9876543210", "000000")
	s.Require().Error(err)
	s.Equal("Invalid OTP", infra.MessageOf(err, ""))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestUnwrapList(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "bare array", body: `[1,2]`, want: `[1,2]`},
		{name: "envelope array", body: `{"success":true,"data":[1]}`, want: `[1]`},
		{name: "first array field in order", body: `{"data":{"count":2,"items":[1],"other":[2]}}`, want: `[1]`},
		{name: "no array", body: `{"data":{"count":0}}`, want: `[]`},
		{name: "empty body", body: ``, want: `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := backend.UnwrapList([]byte(tc.body))
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(got))
		})
	}
}
