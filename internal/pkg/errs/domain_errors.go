package errs

import "errors"

// Client-side sentinel errors shared by the stores and flows
var (
	// Validation errors
	ErrLocationRequired = errors.New("location selection required")
	ErrInvalidMobile    = errors.New("invalid mobile number")
	ErrInvalidOTP       = errors.New("invalid otp")

	// Session errors
	ErrNotLoggedIn = errors.New("not logged in")

	// Coupon claim errors
	ErrAlreadyClaimed        = errors.New("active coupon already exists for deal")
	ErrGoldenAlreadyRedeemed = errors.New("golden coupon already redeemed")
	ErrGoldenLimitReached    = errors.New("golden coupon redemption limit reached")
	ErrGoldenNotEligible     = errors.New("golden coupon not eligible")
	ErrDealExpired           = errors.New("deal expired")
	ErrCouponGeneration      = errors.New("coupon generation failed")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage not available")
)
