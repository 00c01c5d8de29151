package request

type ClaimRequest struct {
	DealID string `json:"dealId" binding:"required"`
	ShopID string `json:"shopId"`
	// CurrentURL defaults to the shell's current route.
	CurrentURL string `json:"currentUrl"`
	// ConfirmLogin answers the login prompt shown to anonymous users.
	ConfirmLogin bool `json:"confirmLogin"`
}
