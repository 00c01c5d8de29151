package api

import (
	"context"

	"zavvi-web/internal/domain/catalog"
	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/domain/user"
	"zavvi-web/internal/usecase/claim"
	"zavvi-web/internal/usecase/gate"
	"zavvi-web/internal/usecase/listing"
	"zavvi-web/internal/usecase/shared"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/api/ports.go -package=apimock

type GateService interface {
	State() gate.State
	Modal() gate.Modal
	Retry(ctx context.Context) error
	Select(ctx context.Context, ref string) error
	Dismiss(reason string) error
}

type LocationService interface {
	SelectedLocation() *location.Location
	SelectedLocationID() string
	SetSelectedLocation(ctx context.Context, loc location.Location) error
	ClearLocationData(ctx context.Context) error
	IsFirstVisit(ctx context.Context) bool
}

type SessionService interface {
	SendOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, otp string) (bool, error)
	Register(ctx context.Context, u user.User) error
	Logout(ctx context.Context) shared.Navigation
	CurrentUser() *user.User
	UpdateProfile(ctx context.Context, patch user.Patch) (user.User, error)
	ConsumeLoginRedirect(ctx context.Context) (string, bool)
}

type CatalogService interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Shops(ctx context.Context, q catalog.ShopQuery) ([]catalog.Shop, error)
	Shop(ctx context.Context, id string) (catalog.Shop, error)
	DealsByShop(ctx context.Context, shopID string) ([]coupon.Deal, error)
	Deal(ctx context.Context, id string) (coupon.Deal, error)
	Home(ctx context.Context) (listing.Home, error)
	PrefetchShop(ctx context.Context, id string)
	Invalidate(pattern string) int
}

type ClaimService interface {
	Claim(ctx context.Context, req claim.Request) (claim.Snapshot, error)
	Current() (claim.Snapshot, bool)
	QR() ([]byte, bool)
	Cancel() bool
}
