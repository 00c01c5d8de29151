package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"zavvi-web/internal/domain/catalog"
	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/domain/user"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
)

// VerifyResult is the outcome of a successful OTP verification.
type VerifyResult struct {
	Token           string
	User            user.User
	ProfileComplete bool
}

// RedeemedQuery filters the caller's redemption records.
type RedeemedQuery struct {
	Status string
	Limit  int
	Page   int
}

func (q RedeemedQuery) values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// Auth

func (c *Client) SendOTP(ctx context.Context, mobile string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/send-otp",
		body:   map[string]string{"mobile": mobile},
		policy: c.standard(0),
	})
	return err
}

func (c *Client) VerifyOTP(ctx context.Context, mobile, otp string) (VerifyResult, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/verify-otp",
		body:   map[string]string{"mobile": mobile, "otp": otp},
		policy: c.standard(0),
	})
	if err != nil {
		return VerifyResult{}, err
	}

	var resp struct {
		Success         *bool  `json:"success"`
		Message         string `json:"message"`
		ProfileComplete *bool  `json:"profileComplete"`
		Token           string `json:"token"`
		Data            struct {
			Token string    `json:"token"`
			User  user.User `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return VerifyResult{}, infra.NewError(infra.KindUpstream, 0, "Malformed response from server", errs.Wrap(err, "decode verify response"))
	}
	if resp.Success != nil && !*resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Invalid OTP"
		}
		return VerifyResult{}, infra.NewError(infra.KindDomainRejection, http.StatusOK, msg, nil)
	}

	result := VerifyResult{
		Token: resp.Data.Token,
		User:  resp.Data.User,
		// only an explicit false means the signup is unfinished
		ProfileComplete: resp.ProfileComplete == nil || *resp.ProfileComplete,
	}
	if result.Token == "" {
		result.Token = resp.Token
	}
	if result.Token == "" {
		return VerifyResult{}, infra.NewError(infra.KindUpstream, 0, "Login failed. Please try again.", errs.New("verify response carried no token"))
	}
	return result, nil
}

func (c *Client) Register(ctx context.Context, u user.User) (user.User, error) {
	body, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: u, policy: c.standard(0)})
	if err != nil {
		return user.User{}, err
	}
	return decodeUser(body)
}

func (c *Client) Me(ctx context.Context) (user.User, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me", policy: c.short(1)})
	if err != nil {
		return user.User{}, err
	}
	return decodeUser(body)
}

func (c *Client) UpdateProfile(ctx context.Context, patch user.Patch) (user.User, error) {
	body, err := c.do(ctx, request{method: http.MethodPut, path: "/auth/me", body: patch, policy: c.standard(0)})
	if err != nil {
		return user.User{}, err
	}
	return decodeUser(body)
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/logout", policy: c.short(0)})
	return err
}

// decodeUser accepts { data: { user } }, { data: user } and a bare user.
func decodeUser(body []byte) (user.User, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return user.User{}, err
	}
	var wrapped struct {
		User *user.User `json:"user"`
	}
	if err := json.Unmarshal(payload, &wrapped); err == nil && wrapped.User != nil {
		return *wrapped.User, nil
	}
	var u user.User
	if err := decode(payload, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Catalog

func (c *Client) Locations(ctx context.Context) ([]location.Location, error) {
	var list []location.Location
	if err := c.getList(ctx, "/locations", nil, c.short(0), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var list []catalog.Category
	if err := c.getList(ctx, "/categories", nil, c.standard(c.cfg.MaxRetries), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Shops(ctx context.Context, q catalog.ShopQuery) ([]catalog.Shop, error) {
	var list []catalog.Shop
	if err := c.getList(ctx, "/shops", q.Values(), c.standard(c.cfg.MaxRetries), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Shop(ctx context.Context, id string) (catalog.Shop, error) {
	var shop catalog.Shop
	if err := c.getJSON(ctx, "/shops/"+url.PathEscape(id), nil, c.short(c.cfg.MaxRetries), &shop); err != nil {
		return catalog.Shop{}, err
	}
	return shop, nil
}

func (c *Client) FeaturedShops(ctx context.Context, locationRef string) ([]catalog.Shop, error) {
	q := url.Values{}
	if locationRef != "" {
		q.Set("location", locationRef)
	}
	var list []catalog.Shop
	if err := c.getList(ctx, "/shops/featured/banner", q, c.short(c.cfg.MaxRetries), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) DealsByShop(ctx context.Context, shopID string) ([]coupon.Deal, error) {
	var list []coupon.Deal
	if err := c.getList(ctx, "/deals/shop/"+url.PathEscape(shopID), nil, c.short(c.cfg.MaxRetries), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Deal(ctx context.Context, id string) (coupon.Deal, error) {
	var deal coupon.Deal
	if err := c.getJSON(ctx, "/deals/"+url.PathEscape(id), nil, c.standard(0), &deal); err != nil {
		return coupon.Deal{}, err
	}
	return deal, nil
}

// Coupons

// GenerateCoupon returns the unwrapped payload; its field names vary and are
// resolved by coupon.ParseGenerated. Generation is not idempotent, so it is never retried.
func (c *Client) GenerateCoupon(ctx context.Context, dealID string) (json.RawMessage, error) {
	body, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/coupons/generate",
		body:   map[string]string{"dealId": dealID},
		policy: c.standard(0),
	})
	if err != nil {
		return nil, err
	}
	return Unwrap(body)
}

func (c *Client) RedeemedCoupons(ctx context.Context, q RedeemedQuery) ([]coupon.RedemptionRecord, error) {
	var list []coupon.RedemptionRecord
	if err := c.getList(ctx, "/redeemed-coupons", q.values(), c.short(c.cfg.MaxRetries), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SaveRedemption(ctx context.Context, req coupon.SaveRedemptionRequest) (coupon.RedemptionRecord, error) {
	body, err := c.do(ctx, request{method: http.MethodPost, path: "/redeemed-coupons", body: req, policy: c.standard(0)})
	if err != nil {
		return coupon.RedemptionRecord{}, err
	}
	payload, err := Unwrap(body)
	if err != nil {
		return coupon.RedemptionRecord{}, err
	}
	var rec coupon.RedemptionRecord
	if err := decode(payload, &rec); err != nil {
		return coupon.RedemptionRecord{}, err
	}
	return rec, nil
}

func (c *Client) CheckGoldenEligibility(ctx context.Context, dealID string) (coupon.Eligibility, error) {
	var el coupon.Eligibility
	path := "/redeemed-coupons/check-golden/" + url.PathEscape(dealID)
	if err := c.getJSON(ctx, path, nil, c.short(0), &el); err != nil {
		return coupon.Eligibility{}, err
	}
	return el, nil
}
