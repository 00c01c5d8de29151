package coupon

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Field aliases the generation response is known to use, in priority order.
var (
	codeAliases    = []string{"couponCode", "code", "coupon.code"}
	shopIDAliases  = []string{"shop.id", "shop._id", "shopId"}
	contactAliases = []string{"shop.contact", "shop.phone"}
)

// Generated is the normalized coupon generation response.
type Generated struct {
	Code          string
	ShopID        string
	VendorContact string
	ExpiresAt     *time.Time
	// Synthesized is true when no alias carried a code.
	Synthesized bool
}

// ParseGenerated extracts the coupon fields, falling back to values derived from the request.
func ParseGenerated(raw json.RawMessage, dealID, requestShopID string) (Generated, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Generated{}, err
	}

	g := Generated{
		Code:          firstString(doc, codeAliases),
		ShopID:        firstString(doc, shopIDAliases),
		VendorContact: firstString(doc, contactAliases),
	}
	if g.Code == "" {
		g.Code = FallbackCode(dealID)
		g.Synthesized = true
	}
	if g.ShopID == "" {
		g.ShopID = requestShopID
	}
	if s := firstString(doc, []string{"expiresAt"}); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			g.ExpiresAt = &t
		}
	}
	return g, nil
}

// FallbackCode is COUPON- followed by the first eight characters of the deal id, upper-cased.
func FallbackCode(dealID string) string {
	id := dealID
	if len(id) > 8 {
		id = id[:8]
	}
	return "COUPON-" + strings.ToUpper(id)
}

func firstString(doc map[string]any, paths []string) string {
	for _, p := range paths {
		if s := lookupString(doc, strings.Split(p, ".")); s != "" {
			return s
		}
	}
	return ""
}

func lookupString(doc map[string]any, path []string) string {
	var cur any = doc
	for _, part := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[part]
	}
	switch v := cur.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
