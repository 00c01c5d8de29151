package claim

import (
	"context"
	"encoding/json"

	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/infra/backend"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/claim/ports.go -package=claimmock

// API is the coupon side of the backend.
type API interface {
	RedeemedCoupons(ctx context.Context, q backend.RedeemedQuery) ([]coupon.RedemptionRecord, error)
	CheckGoldenEligibility(ctx context.Context, dealID string) (coupon.Eligibility, error)
	GenerateCoupon(ctx context.Context, dealID string) (json.RawMessage, error)
	SaveRedemption(ctx context.Context, req coupon.SaveRedemptionRequest) (coupon.RedemptionRecord, error)
}

// Session answers whether the user may claim and keeps the resume bookmark.
type Session interface {
	IsLoggedIn(ctx context.Context) bool
	SetRedirectURL(url string)
}

// Invalidator drops cached reads made stale by a claim.
type Invalidator interface {
	InvalidatePattern(pattern string) int
}

// Decision is the answer to a confirmation prompt.
type Decision int

const (
	Cancelled Decision = iota
	Confirmed
)

func (d Decision) String() string {
	if d == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// Prompter asks the user to confirm an interruption of the flow.
type Prompter interface {
	Confirm(ctx context.Context, message string) (Decision, error)
}

// PromptFunc adapts a function to Prompter.
type PromptFunc func(ctx context.Context, message string) (Decision, error)

func (f PromptFunc) Confirm(ctx context.Context, message string) (Decision, error) {
	return f(ctx, message)
}

// Answer is a Prompter that always gives d.
func Answer(d Decision) Prompter {
	return PromptFunc(func(context.Context, string) (Decision, error) { return d, nil })
}
