package coupon

import "strings"

// Payload is the literal string encoded into the QR image.
type Payload struct {
	Value string
	// Redeemable is true only when the payload is a vendor redemption URL.
	Redeemable bool
}

// BuildPayload returns {vendorBase}/redeem/{couponID}?token={token} when both ids are known,
// and the bare coupon code otherwise.
func BuildPayload(vendorBase, couponID, redemptionToken, code string) Payload {
	if couponID != "" && redemptionToken != "" {
		return Payload{
			Value:      RedemptionURL(vendorBase, couponID, redemptionToken),
			Redeemable: true,
		}
	}
	return Payload{Value: code}
}

func RedemptionURL(vendorBase, couponID, redemptionToken string) string {
	return strings.TrimRight(vendorBase, "/") + "/redeem/" + couponID + "?token=" + redemptionToken
}
