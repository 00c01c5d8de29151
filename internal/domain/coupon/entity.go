package coupon

import (
	"encoding/json"
	"strings"
	"time"

	"zavvi-web/internal/domain/catalog"
)

// Deal is produced by the backend; the client never mutates it.
type Deal struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Discount           string     `json:"discount,omitempty"`
	ShopID             string     `json:"shopId,omitempty"`
	CouponCode         string     `json:"couponCode,omitempty"`
	IsGoldenCoupon     bool       `json:"isGoldenCoupon"`
	MaxRedemptions     int        `json:"maxRedemptions,omitempty"`
	CurrentRedemptions int        `json:"currentRedemptions,omitempty"`
	ValidUntil         *time.Time `json:"validUntil,omitempty"`
}

// UnmarshalJSON accepts both `id` and the backend's `_id`.
func (d *Deal) UnmarshalJSON(b []byte) error {
	type alias Deal
	var raw struct {
		alias
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = Deal(raw.alias)
	if d.ID == "" {
		d.ID = raw.MongoID
	}
	return nil
}

// RemainingRedemptions is -1 when the deal has no cap.
func (d Deal) RemainingRedemptions() int {
	if d.MaxRedemptions <= 0 {
		return -1
	}
	if left := d.MaxRedemptions - d.CurrentRedemptions; left > 0 {
		return left
	}
	return 0
}

// RedemptionRecord is the persisted claim; RedemptionToken makes it vendor-scannable.
type RedemptionRecord struct {
	ID              string      `json:"id"`
	Deal            catalog.Ref `json:"deal"`
	Shop            catalog.Ref `json:"shop"`
	CouponCode      string      `json:"couponCode"`
	RedemptionToken string      `json:"redemptionToken,omitempty"`
	Status          string      `json:"status,omitempty"`
	ExpiresAt       *time.Time  `json:"expiresAt,omitempty"`
}

func (r *RedemptionRecord) UnmarshalJSON(b []byte) error {
	type alias RedemptionRecord
	var raw struct {
		alias
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = RedemptionRecord(raw.alias)
	if raw.MongoID != "" {
		r.ID = raw.MongoID
	}
	return nil
}

const StatusActive = "active"

// References reports whether the record belongs to dealID.
func (r RedemptionRecord) References(dealID string) bool {
	return dealID != "" && r.Deal.ID == dealID
}

// FindActiveFor returns the first record that references dealID.
func FindActiveFor(records []RedemptionRecord, dealID string) (RedemptionRecord, bool) {
	for _, r := range records {
		if r.Status != "" && !strings.EqualFold(r.Status, StatusActive) {
			continue
		}
		if r.References(dealID) {
			return r, true
		}
	}
	return RedemptionRecord{}, false
}

// Eligibility is the golden-tier pre-check result.
type Eligibility struct {
	CanRedeem       bool `json:"canRedeem"`
	AlreadyRedeemed bool `json:"alreadyRedeemed"`
	LimitReached    bool `json:"limitReached"`
}

// SaveRedemptionRequest persists a generated coupon and yields the redemption token.
type SaveRedemptionRequest struct {
	DealID     string     `json:"dealId"`
	ShopID     string     `json:"shopId"`
	CouponCode string     `json:"couponCode"`
	QRCode     string     `json:"qrCode"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}
