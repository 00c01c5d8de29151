package request

import (
	"strings"

	"zavvi-web/internal/domain/user"
)

type SendOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	DOB      string `json:"dob"`
	Location string `json:"location"`
}

func (r *RegisterRequest) ToDomain() user.User {
	return user.User{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Mobile:   r.Mobile,
		DOB:      r.DOB,
		Location: r.Location,
	}
}

// UpdateProfileRequest only changes the fields that are present.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	DOB      *string `json:"dob"`
	Location *string `json:"location"`
}

func (r *UpdateProfileRequest) ToDomain() user.Patch {
	return user.Patch{
		Name:     r.Name,
		Email:    r.Email,
		DOB:      r.DOB,
		Location: r.Location,
	}
}
