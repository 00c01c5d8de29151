package user

import (
	"regexp"
	"strings"

	"zavvi-web/internal/pkg/errs"
)

var (
	mobileRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	otpRegex    = regexp.MustCompile(`^[0-9]{6}$`)
)

const OTPLength = 6

// NormalizeMobile strips spaces and an optional +91/0 prefix, then checks the 10-digit form.
func NormalizeMobile(mobile string) (string, error) {
	m := strings.ReplaceAll(strings.TrimSpace(mobile), " ", "")
	m = strings.TrimPrefix(m, "+91")
	if len(m) == 11 && strings.HasPrefix(m, "0") {
		m = m[1:]
	}
	if !mobileRegex.MatchString(m) {
		return "", errs.ErrInvalidMobile
	}
	return m, nil
}

func ValidateOTP(otp string) error {
	if !otpRegex.MatchString(strings.TrimSpace(otp)) {
		return errs.ErrInvalidOTP
	}
	return nil
}
