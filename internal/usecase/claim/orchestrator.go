package claim

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/backend"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/pkg/qr"
	"zavvi-web/internal/usecase/cache"
	"zavvi-web/internal/usecase/shared"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle             State = "idle"
	StateAuthCheck        State = "auth_check"
	StateExistingCheck    State = "existing_check"
	StateEligibilityCheck State = "eligibility_check"
	StateGenerating       State = "generating"
	StatePersisting       State = "persisting"
	StateReady            State = "ready"
	StateFailed           State = "failed"
)

const (
	MsgLoginPrompt       = "Please login to claim this deal. Would you like to login now?"
	MsgAlreadyClaimed    = `You already have an active coupon for this offer! Check "My Coupons".`
	MsgGoldenRedeemed    = "You have already redeemed this Golden Coupon"
	MsgGoldenLimit       = "This Golden Coupon has reached its redemption limit"
	MsgGoldenUnavailable = "This Golden Coupon is not available to you"
	MsgDealExpired       = "This deal has expired."
	MsgGenerationFailed  = "Failed to generate coupon. Please try again."

	LoginPath           = "/login"
	RedeemedCouponsPath = "/redeemed-coupons"
)

// ErrCancelled is returned when the attempt was cancelled before it settled.
var ErrCancelled = errors.New("claim cancelled")

// DealLoader fetches the full deal once the user is known to be logged in.
type DealLoader func(ctx context.Context, id string) (coupon.Deal, error)

// Request starts one claim attempt. When LoadDeal is set only Deal.ID needs
// to be filled; the rest of the deal is loaded after the login check.
type Request struct {
	Deal       coupon.Deal
	LoadDeal   DealLoader
	ShopID     string
	CurrentURL string
	Prompter   Prompter
}

// Snapshot is the externally visible state of the current attempt.
type Snapshot struct {
	AttemptID       string             `json:"attemptId"`
	State           State              `json:"state"`
	DealID          string             `json:"dealId"`
	ShopID          string             `json:"shopId,omitempty"`
	Code            string             `json:"couponCode,omitempty"`
	CouponID        string             `json:"couponId,omitempty"`
	RedemptionToken string             `json:"-"`
	Payload         string             `json:"qrPayload,omitempty"`
	Redeemable      bool               `json:"redeemable"`
	Degraded        bool               `json:"degraded"`
	VendorContact   string             `json:"vendorContact,omitempty"`
	ExpiresAt       *time.Time         `json:"expiresAt,omitempty"`
	Message         string             `json:"message,omitempty"`
	Kind            infra.ErrorKind    `json:"kind,omitempty"`
	Navigation      *shared.Navigation `json:"navigation,omitempty"`
}

type attempt struct {
	snap   Snapshot
	png    []byte
	cancel context.CancelFunc
}

// Orchestrator runs the coupon claim flow one step at a time.
type Orchestrator struct {
	api     API
	session Session
	cache   Invalidator
	cfg     config.ClaimConfig
	logger  *slog.Logger

	mu      sync.Mutex
	current *attempt

	persisting sync.WaitGroup
}

func New(cfg config.Config, api API, session Session, c Invalidator, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{api: api, session: session, cache: c, cfg: cfg.Claim, logger: logger}
}

// Claim runs one attempt to completion. A new claim replaces any attempt
// still in progress.
func (o *Orchestrator) Claim(ctx context.Context, req Request) (Snapshot, error) {
	if strings.TrimSpace(req.Deal.ID) == "" {
		return Snapshot{}, infra.NewError(infra.KindValidation, 0, "Deal is required", nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	att := &attempt{
		snap:   Snapshot{AttemptID: uuid.NewString(), State: StateIdle, DealID: req.Deal.ID, ShopID: req.ShopID},
		cancel: cancel,
	}
	o.mu.Lock()
	if o.current != nil {
		o.current.cancel()
	}
	o.current = att
	o.mu.Unlock()

	logger := o.logger.With(slog.String("attempt_id", att.snap.AttemptID), slog.String("deal_id", req.Deal.ID))

	// AuthCheck
	o.advance(att, StateAuthCheck)
	if !o.session.IsLoggedIn(ctx) {
		return o.promptLogin(ctx, att, req, logger)
	}
	if req.LoadDeal != nil {
		deal, err := o.loadDeal(ctx, req)
		if err != nil {
			return o.fail(att, err), err
		}
		req.Deal = deal
	}

	// ExistingCheck
	if err := o.step(ctx, att, StateExistingCheck); err != nil {
		return o.snapshot(att), err
	}
	if snap, err, done := o.checkExisting(ctx, att, req, logger); done {
		return snap, err
	}

	// EligibilityCheck
	if err := o.step(ctx, att, StateEligibilityCheck); err != nil {
		return o.snapshot(att), err
	}
	if snap, err, done := o.checkEligibility(ctx, att, req, logger); done {
		return snap, err
	}

	// Generating
	if err := o.step(ctx, att, StateGenerating); err != nil {
		return o.snapshot(att), err
	}
	gen, err := o.generate(ctx, req, logger)
	if err != nil {
		return o.fail(att, err), err
	}
	o.update(att, func(s *Snapshot) {
		s.Code = gen.Code
		s.ShopID = gen.ShopID
		s.VendorContact = gen.VendorContact
		s.ExpiresAt = gen.ExpiresAt
	})

	// Persisting
	if err := o.step(ctx, att, StatePersisting); err != nil {
		return o.snapshot(att), err
	}
	rec, persisted, err := o.persist(ctx, req, gen, logger)
	if err != nil {
		return o.snapshot(att), err
	}

	// Ready
	return o.ready(att, gen, rec, persisted, logger), nil
}

func (o *Orchestrator) loadDeal(ctx context.Context, req Request) (coupon.Deal, error) {
	stepCtx, cancel := o.stepContext(ctx)
	defer cancel()

	deal, err := req.LoadDeal(stepCtx, req.Deal.ID)
	if err != nil {
		return coupon.Deal{}, err
	}
	if deal.ID == "" {
		deal.ID = req.Deal.ID
	}
	return deal, nil
}

func (o *Orchestrator) promptLogin(ctx context.Context, att *attempt, req Request, logger *slog.Logger) (Snapshot, error) {
	prompter := req.Prompter
	if prompter == nil {
		prompter = Answer(Cancelled)
	}
	decision, err := prompter.Confirm(ctx, MsgLoginPrompt)
	if err != nil {
		logger.Warn("Login prompt failed", slog.String("error", err.Error()))
		decision = Cancelled
	}
	logger.Info("Login required to claim", slog.String("decision", decision.String()))

	if decision != Confirmed {
		return o.apply(att, func(s *Snapshot) { s.State = StateIdle }), nil
	}

	o.session.SetRedirectURL(claimRedirect(req.CurrentURL, req.Deal.ID))
	return o.apply(att, func(s *Snapshot) {
		s.State = StateIdle
		s.Navigation = &shared.Navigation{Path: LoginPath}
	}), nil
}

// claimRedirect is {currentURL}?claimDeal={dealID}.
func claimRedirect(currentURL, dealID string) string {
	sep := "?"
	if strings.Contains(currentURL, "?") {
		sep = "&"
	}
	return currentURL + sep + "claimDeal=" + dealID
}

func (o *Orchestrator) checkExisting(ctx context.Context, att *attempt, req Request, logger *slog.Logger) (Snapshot, error, bool) {
	stepCtx, cancel := o.stepContext(ctx)
	defer cancel()

	records, err := o.api.RedeemedCoupons(stepCtx, backend.RedeemedQuery{Status: coupon.StatusActive})
	if err != nil {
		if infra.IsKind(err, infra.KindAuthExpired) {
			return o.fail(att, err), err, true
		}
		// the server re-checks on generation
		logger.Warn("Existing coupon check failed, proceeding", slog.String("error", err.Error()))
		return Snapshot{}, nil, false
	}

	existing, found := coupon.FindActiveFor(records, req.Deal.ID)
	if !found {
		return Snapshot{}, nil, false
	}
	logger.Info("Active coupon already exists", slog.String("record_id", existing.ID))
	rejection := infra.NewError(infra.KindDomainRejection, 0, MsgAlreadyClaimed, errs.ErrAlreadyClaimed)
	o.fail(att, rejection)
	snap := o.apply(att, func(s *Snapshot) {
		s.Navigation = &shared.Navigation{Path: RedeemedCouponsPath, Notice: MsgAlreadyClaimed}
	})
	return snap, rejection, true
}

func (o *Orchestrator) checkEligibility(ctx context.Context, att *attempt, req Request, logger *slog.Logger) (Snapshot, error, bool) {
	if !req.Deal.IsGoldenCoupon {
		return Snapshot{}, nil, false
	}
	stepCtx, cancel := o.stepContext(ctx)
	defer cancel()

	el, err := o.api.CheckGoldenEligibility(stepCtx, req.Deal.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindAuthExpired) {
			return o.fail(att, err), err, true
		}
		logger.Warn("Golden eligibility check failed, proceeding", slog.String("error", err.Error()))
		return Snapshot{}, nil, false
	}
	if el.CanRedeem {
		return Snapshot{}, nil, false
	}

	rejection := infra.NewError(infra.KindDomainRejection, 0, MsgGoldenUnavailable, errs.ErrGoldenNotEligible)
	switch {
	case el.AlreadyRedeemed:
		rejection = infra.NewError(infra.KindDomainRejection, 0, MsgGoldenRedeemed, errs.ErrGoldenAlreadyRedeemed)
	case el.LimitReached:
		rejection = infra.NewError(infra.KindDomainRejection, 0, MsgGoldenLimit, errs.ErrGoldenLimitReached)
	}
	logger.Info("Golden coupon not eligible", slog.String("reason", rejection.Message()))
	return o.fail(att, rejection), rejection, true
}

func (o *Orchestrator) generate(ctx context.Context, req Request, logger *slog.Logger) (coupon.Generated, error) {
	stepCtx, cancel := o.stepContext(ctx)
	defer cancel()

	raw, err := o.api.GenerateCoupon(stepCtx, req.Deal.ID)
	if err != nil {
		return coupon.Generated{}, translateGenerationError(err)
	}
	if isEmptyPayload(raw) {
		return coupon.Generated{}, infra.NewError(infra.KindUpstream, 0, MsgGenerationFailed, errs.Mark(errs.New("empty generation response"), errs.ErrCouponGeneration))
	}
	gen, err := coupon.ParseGenerated(raw, req.Deal.ID, req.ShopID)
	if err != nil {
		return coupon.Generated{}, infra.NewError(infra.KindUpstream, 0, MsgGenerationFailed, errs.Mark(err, errs.ErrCouponGeneration))
	}
	if gen.Synthesized {
		logger.Warn("Generation response carried no coupon code, using fallback", slog.String("code", gen.Code))
	}
	return gen, nil
}

func translateGenerationError(err error) error {
	var e infra.Error
	isInfra := errors.As(err, &e)

	switch {
	case infra.IsKind(err, infra.KindAuthExpired):
		return err
	case isInfra && e.Flag("isGoldenCoupon") && e.Flag("alreadyRedeemed"):
		return infra.NewError(infra.KindDomainRejection, e.Status, MsgGoldenRedeemed, errs.Mark(err, errs.ErrGoldenAlreadyRedeemed))
	case strings.Contains(strings.ToLower(infra.MessageOf(err, err.Error())), "expired"):
		return infra.NewError(infra.KindDomainRejection, e.Status, MsgDealExpired, errs.Mark(err, errs.ErrDealExpired))
	default:
		return infra.NewError(infra.KindOf(err), e.Status, infra.MessageOf(err, MsgGenerationFailed), errs.Mark(err, errs.ErrCouponGeneration))
	}
}

func isEmptyPayload(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}

// persist saves the redemption record on a context detached from the attempt:
// once started the record must be written even if the user walks away.
// persisted is false when the flow must degrade to a code-only QR.
func (o *Orchestrator) persist(ctx context.Context, req Request, gen coupon.Generated, logger *slog.Logger) (coupon.RedemptionRecord, bool, error) {
	provisional, err := qr.DataURL(gen.Code, o.qrSize())
	if err != nil {
		logger.Warn("Provisional QR encoding failed", slog.String("error", err.Error()))
	}
	saveReq := coupon.SaveRedemptionRequest{
		DealID:     req.Deal.ID,
		ShopID:     gen.ShopID,
		CouponCode: gen.Code,
		QRCode:     provisional,
		ExpiresAt:  gen.ExpiresAt,
	}

	type result struct {
		rec coupon.RedemptionRecord
		err error
	}
	done := make(chan result, 1)
	o.persisting.Add(1)
	go func() {
		defer o.persisting.Done()
		pctx, cancel := o.stepContext(context.WithoutCancel(ctx))
		defer cancel()
		rec, err := o.api.SaveRedemption(pctx, saveReq)
		if err == nil {
			logger.Info("Redemption record saved", slog.String("record_id", rec.ID))
			o.cache.InvalidatePattern(cache.DealsByShopKey(gen.ShopID))
		}
		done <- result{rec: rec, err: err}
	}()

	select {
	case <-ctx.Done():
		return coupon.RedemptionRecord{}, false, ErrCancelled
	case res := <-done:
		if res.err != nil {
			_ = infra.WrapErr(logger, infra.KindDegradation, "Redemption record not saved, QR is code only", res.err)
			return coupon.RedemptionRecord{}, false, nil
		}
		if res.rec.ID == "" || res.rec.RedemptionToken == "" {
			_ = infra.WrapErr(logger, infra.KindDegradation, "No redemption token received, QR is code only", nil)
			return res.rec, false, nil
		}
		return res.rec, true, nil
	}
}

func (o *Orchestrator) ready(att *attempt, gen coupon.Generated, rec coupon.RedemptionRecord, persisted bool, logger *slog.Logger) Snapshot {
	payload := coupon.BuildPayload(o.cfg.VendorPortalURL, rec.ID, rec.RedemptionToken, gen.Code)
	png, err := qr.PNG(payload.Value, o.qrSize())
	if err != nil {
		logger.Error("QR encoding failed", slog.String("error", err.Error()))
	}

	o.mu.Lock()
	if o.current == att {
		att.png = png
	}
	o.mu.Unlock()

	snap := o.apply(att, func(s *Snapshot) {
		s.State = StateReady
		s.CouponID = rec.ID
		s.RedemptionToken = rec.RedemptionToken
		s.Payload = payload.Value
		s.Redeemable = payload.Redeemable
		s.Degraded = !persisted
	})
	logger.Info("Coupon ready", slog.Bool("redeemable", payload.Redeemable), slog.Bool("degraded", !persisted))
	return snap
}

func (o *Orchestrator) qrSize() int {
	if o.cfg.QRSize > 0 {
		return o.cfg.QRSize
	}
	return qr.DefaultSize
}

func (o *Orchestrator) stepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.cfg.StepTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.cfg.StepTimeout)
}

// step moves to the next state unless the attempt was cancelled.
func (o *Orchestrator) step(ctx context.Context, att *attempt, next State) error {
	if ctx.Err() != nil {
		return ErrCancelled
	}
	o.advance(att, next)
	return nil
}

func (o *Orchestrator) advance(att *attempt, next State) {
	o.update(att, func(s *Snapshot) { s.State = next })
}

func (o *Orchestrator) fail(att *attempt, err error) Snapshot {
	kind := infra.KindOf(err)
	msg := infra.MessageOf(err, MsgGenerationFailed)
	return o.apply(att, func(s *Snapshot) {
		s.State = StateFailed
		s.Kind = kind
		s.Message = msg
	})
}

func (o *Orchestrator) update(att *attempt, fn func(s *Snapshot)) {
	o.apply(att, fn)
}

// apply writes fn into the attempt while it is still current and returns the
// result. A cancelled attempt has been released and only gets a copy.
func (o *Orchestrator) apply(att *attempt, fn func(s *Snapshot)) Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == att {
		fn(&att.snap)
		return att.snap
	}
	snap := att.snap
	fn(&snap)
	return snap
}

func (o *Orchestrator) snapshot(att *attempt) Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return att.snap
}

// Current returns the snapshot of the attempt in progress or last finished.
func (o *Orchestrator) Current() (Snapshot, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil {
		return Snapshot{}, false
	}
	return o.current.snap, true
}

// QR returns the PNG of the current attempt once it is ready.
func (o *Orchestrator) QR() ([]byte, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil || len(o.current.png) == 0 {
		return nil, false
	}
	return o.current.png, true
}

// Cancel releases the current attempt. A persistence call already in flight
// keeps running so the record it creates is not lost.
func (o *Orchestrator) Cancel() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil {
		return false
	}
	o.current.cancel()
	o.current = nil
	o.logger.Info("Claim cancelled")
	return true
}

// Drain waits for background persistence to finish or ctx to end.
func (o *Orchestrator) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.persisting.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
