package gate

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/internal/pkg/errs"
	"zavvi-web/internal/usecase/cache"
	"zavvi-web/internal/usecase/locationstore"

	"github.com/cenkalti/backoff/v5"
)

//go:generate mockgen -source=gate.go -destination=../../../tests/mock/gate/location_source.go -package=gatemock

// LocationSource fetches the selectable locations.
type LocationSource interface {
	Locations(ctx context.Context) ([]location.Location, error)
}

type State string

const (
	StateUnchecked State = "unchecked"
	StateBlocked   State = "blocked"
	StateUnblocked State = "unblocked"
)

const (
	MsgStorageUnavailable = "Storage not available. Please enable cookies and refresh."
	MsgNetwork            = "Network error. Please check your connection."
	MsgNoLocations        = "No locations available. Please try again later."
	MsgMaxRetries         = "Maximum retries reached. Please refresh the page."
	MsgSelectRequired     = "Please select a location from the dropdown"
	MsgInvalidLocation    = "Invalid location. Please select again."
	MsgSaveFailed         = "Failed to save location. Please try again."
	MsgDismissRejected    = "Please select a city to continue using the app"
)

// Modal is what the blocking location picker shows.
type Modal struct {
	Visible    bool                `json:"visible"`
	Locations  []location.Location `json:"locations"`
	Loading    bool                `json:"loading"`
	Submitting bool                `json:"submitting"`
	Error      string              `json:"error,omitempty"`
	RetryCount int                 `json:"retryCount"`
	MaxRetries int                 `json:"maxRetries"`
	Terminal   bool                `json:"terminal"`
}

// Gate keeps protected reads from running until a location is selected.
type Gate struct {
	locations *locationstore.Store
	cache     *cache.RequestCache
	source    LocationSource
	storage   storage.Store
	cfg       config.GateConfig
	interval  time.Duration
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	modal Modal
	ready chan struct{}
}

func New(cfg config.Config, locations *locationstore.Store, c *cache.RequestCache, source LocationSource, st storage.Store, logger *slog.Logger) *Gate {
	g := &Gate{
		locations: locations,
		cache:     c,
		source:    source,
		storage:   st,
		cfg:       cfg.Gate,
		interval:  cfg.Backend.RetryInterval,
		logger:    logger,
		state:     StateUnchecked,
		modal:     Modal{MaxRetries: cfg.Gate.ManualRetries},
		ready:     make(chan struct{}),
	}
	locations.Subscribe(g.onLocation)
	return g
}

// Start leaves Unchecked. With a stored location the gate opens immediately;
// otherwise it blocks and loads the location list.
func (g *Gate) Start(ctx context.Context) {
	g.mu.Lock()
	if g.state != StateUnchecked {
		g.mu.Unlock()
		return
	}
	if g.locations.HasSelectedLocation() {
		g.unblockLocked()
		g.mu.Unlock()
		g.logger.Info("Location already selected, gate open", slog.String("location", g.locations.SelectedLocationName()))
		return
	}
	g.blockLocked()
	g.mu.Unlock()

	g.logger.Info("No location selected, gate blocked")
	if err := storage.Probe(ctx, g.storage); err != nil {
		g.logger.Error("Storage unavailable", slog.String("error", err.Error()))
		g.mu.Lock()
		g.modal.Error = MsgStorageUnavailable
		g.modal.Loading = false
		g.mu.Unlock()
		return
	}
	_ = g.LoadLocations(ctx)
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Modal returns a snapshot of the picker.
func (g *Gate) Modal() Modal {
	g.mu.Lock()
	defer g.mu.Unlock()
	m := g.modal
	m.Locations = append([]location.Location(nil), g.modal.Locations...)
	return m
}

// Ready reports whether protected reads may run.
func (g *Gate) Ready() bool {
	return g.State() == StateUnblocked
}

// Wait blocks until the gate opens or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ready := g.ready
	g.mu.Unlock()

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return infra.NewError(infra.KindValidation, 0, "Please select a location to continue", errs.Mark(ctx.Err(), errs.ErrLocationRequired))
	}
}

// LoadLocations fetches the list through the request cache. Each fetch is
// bounded by the gate timeout and retried automatically before the failure
// counts against the manual retry budget.
func (g *Gate) LoadLocations(ctx context.Context) error {
	g.mu.Lock()
	g.modal.Loading = true
	g.modal.Error = ""
	g.mu.Unlock()

	list, err := cache.Get(ctx, g.cache, cache.KeyLocations, cache.TTLLocations, g.fetch)
	if err != nil {
		g.logger.Error("Failed to load locations", slog.String("error", err.Error()))
		g.loadFailed(MsgNetwork)
		return infra.NewError(infra.KindTransientNetwork, 0, MsgNetwork, err)
	}

	valid := location.FilterValid(list)
	if skipped := len(list) - len(valid); skipped > 0 {
		g.logger.Warn("Skipped invalid locations", slog.Int("count", skipped))
	}
	if len(valid) == 0 {
		g.cache.Invalidate(cache.KeyLocations)
		g.loadFailed(MsgNoLocations)
		return infra.NewError(infra.KindUpstream, 0, MsgNoLocations, nil)
	}

	g.mu.Lock()
	g.modal.Locations = valid
	g.modal.Loading = false
	g.modal.Error = ""
	g.mu.Unlock()
	g.logger.Info("Locations loaded", slog.Int("count", len(valid)))
	return nil
}

func (g *Gate) fetch(ctx context.Context) ([]location.Location, error) {
	interval := g.interval
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return backoff.Retry(ctx, func() ([]location.Location, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.FetchTimeout)
		defer cancel()
		list, err := g.source.Locations(attemptCtx)
		if err != nil && infra.IsKind(err, infra.KindAuthExpired) {
			return nil, backoff.Permanent(err)
		}
		return list, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(interval)),
		backoff.WithMaxTries(g.cfg.AutoRetries+1),
	)
}

func (g *Gate) loadFailed(msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.modal.Error = msg
	g.modal.Loading = false
	g.modal.RetryCount++
}

// Retry is the manual retry affordance. Once the budget is spent the modal
// is terminal and only a full reload helps.
func (g *Gate) Retry(ctx context.Context) error {
	g.mu.Lock()
	if g.modal.RetryCount >= g.cfg.ManualRetries {
		g.modal.Error = MsgMaxRetries
		g.modal.Terminal = true
		g.mu.Unlock()
		return infra.NewError(infra.KindDomainRejection, 0, MsgMaxRetries, nil)
	}
	g.mu.Unlock()

	g.logger.Info("Manual location retry")
	return g.LoadLocations(ctx)
}

// Select applies the user's pick from the modal list.
func (g *Gate) Select(ctx context.Context, ref string) error {
	ref = strings.TrimSpace(ref)

	g.mu.Lock()
	if g.modal.Submitting {
		g.mu.Unlock()
		g.logger.Debug("Location selection already in progress")
		return nil
	}
	if ref == "" {
		g.modal.Error = MsgSelectRequired
		g.mu.Unlock()
		return infra.WrapErr(g.logger, infra.KindValidation, MsgSelectRequired, errs.ErrLocationRequired)
	}
	loc, ok := location.Find(g.modal.Locations, ref)
	if !ok {
		g.modal.Error = MsgInvalidLocation
		g.mu.Unlock()
		return infra.WrapErr(g.logger, infra.KindValidation, MsgInvalidLocation, errs.Mark(errs.Newf("unknown location %q", ref), errs.ErrLocationRequired))
	}
	g.modal.Submitting = true
	g.modal.Error = ""
	g.mu.Unlock()

	// the store publishes to onLocation, so g.mu must not be held here
	err := g.save(ctx, loc)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.modal.Submitting = false
	if err != nil {
		g.modal.Error = MsgSaveFailed
		return infra.WrapErr(g.logger, infra.KindUpstream, MsgSaveFailed, err)
	}
	return nil
}

func (g *Gate) save(ctx context.Context, loc location.Location) error {
	if err := g.locations.SetSelectedLocation(ctx, loc); err != nil {
		return err
	}
	if err := g.locations.MarkLocationSelected(ctx); err != nil {
		g.logger.Warn("Failed to record first visit", slog.String("error", err.Error()))
	}
	if !location.SameIdentity(g.locations.SelectedLocation(), &loc) {
		return errs.New("location verification failed")
	}
	return nil
}

// Dismiss rejects every attempt to close the modal without choosing.
func (g *Gate) Dismiss(reason string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateBlocked {
		return nil
	}
	g.modal.Error = MsgDismissRejected
	g.logger.Debug("Modal dismiss rejected", slog.String("reason", reason))
	return infra.NewError(infra.KindValidation, 0, MsgDismissRejected, errs.ErrLocationRequired)
}

// onLocation keeps the gate in step with the store: a selection opens it and
// clearing the selection closes it again.
func (g *Gate) onLocation(loc *location.Location) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.state == StateUnchecked:
		return
	case loc != nil && g.state == StateBlocked:
		g.unblockLocked()
		g.logger.Info("Location selected, gate open", slog.String("location", loc.Name))
	case loc == nil && g.state == StateUnblocked:
		g.blockLocked()
		g.logger.Info("Location cleared, gate blocked")
		go func() {
			_ = g.LoadLocations(context.Background())
		}()
	}
}

func (g *Gate) blockLocked() {
	g.state = StateBlocked
	g.modal = Modal{Visible: true, Loading: true, MaxRetries: g.cfg.ManualRetries}
	select {
	case <-g.ready:
		g.ready = make(chan struct{})
	default:
	}
}

func (g *Gate) unblockLocked() {
	g.state = StateUnblocked
	g.modal.Visible = false
	g.modal.Error = ""
	select {
	case <-g.ready:
	default:
		close(g.ready)
	}
}
