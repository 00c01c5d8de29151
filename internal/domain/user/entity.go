package user

// User is the session user as returned by OTP verification and /auth/me.
type User struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	DOB        string `json:"dob,omitempty"`
	IsVerified bool   `json:"isVerified,omitempty"`
	Location   string `json:"location,omitempty"`
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Mobile     *string `json:"mobile,omitempty"`
	DOB        *string `json:"dob,omitempty"`
	IsVerified *bool   `json:"isVerified,omitempty"`
	Location   *string `json:"location,omitempty"`
}

// IsProfileComplete mirrors the backend's notion of a finished signup.
func (u User) IsProfileComplete() bool {
	return u.Name != "" && u.Email != ""
}
