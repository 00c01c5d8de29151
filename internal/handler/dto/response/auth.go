package response

import "zavvi-web/internal/domain/user"

type VerifyOTPResponse struct {
	ProfileComplete bool       `json:"profileComplete"`
	User            *user.User `json:"user"`
}

type RedirectResponse struct {
	Path string `json:"path"`
}
