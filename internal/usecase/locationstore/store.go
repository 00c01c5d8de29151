package locationstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/errs"
)

// Listener receives the selected location, or nil once it is cleared.
// Listeners run on the publishing goroutine and must not change the selection.
type Listener func(loc *location.Location)

type subscriber struct {
	id       int
	fn       Listener
	seen     bool
	lastSeen *location.Location
}

// Store owns the selected location. Subscribers are told about a change only
// when the location identity differs from what they last saw.
type Store struct {
	storage storage.Store
	logger  *slog.Logger

	mu      sync.RWMutex
	current *location.Location

	notifyMu sync.Mutex
	subs     []*subscriber
	nextID   int
}

// New restores the persisted selection. Unreadable or invalid data means no selection.
func New(ctx context.Context, st storage.Store, logger *slog.Logger) *Store {
	s := &Store{
		storage: st,
		logger:  logger,
	}

	var loc location.Location
	ok, err := storage.GetJSON(ctx, st, storage.KeySelectedLocation, &loc)
	switch {
	case err != nil:
		logger.Warn("Ignoring unreadable stored location", slog.String("error", err.Error()))
	case ok && loc.Validate() == nil:
		s.current = &loc
		logger.Info("Restored selected location", slog.String("location", loc.Name))
	}
	return s
}

// SetSelectedLocation persists loc, replaces the in-memory value and publishes it.
func (s *Store) SetSelectedLocation(ctx context.Context, loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return infra.WrapErr(s.logger, infra.KindValidation, "Invalid location. Please select again.", errs.Mark(err, errs.ErrLocationRequired))
	}
	if err := storage.SetJSON(ctx, s.storage, storage.KeySelectedLocation, loc); err != nil {
		// the in-memory selection still wins; persistence is best effort
		s.logger.Warn("Failed to persist selected location", slog.String("error", err.Error()))
	}

	s.replace(&loc, false)
	s.logger.Info("Selected location changed", slog.String("location", loc.Name))
	return nil
}

// SelectedLocation returns a copy of the current selection, or nil.
func (s *Store) SelectedLocation() *location.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	loc := *s.current
	return &loc
}

func (s *Store) SelectedLocationName() string {
	if loc := s.SelectedLocation(); loc != nil {
		return loc.Name
	}
	return ""
}

func (s *Store) SelectedLocationID() string {
	if loc := s.SelectedLocation(); loc != nil {
		return loc.ID
	}
	return ""
}

func (s *Store) HasSelectedLocation() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// RefreshCurrentLocation re-publishes the current selection to every
// subscriber, bypassing de-duplication.
func (s *Store) RefreshCurrentLocation() {
	if loc := s.SelectedLocation(); loc != nil {
		s.replace(loc, true)
	}
}

// MarkLocationSelected records that the first-visit gate has been satisfied.
func (s *Store) MarkLocationSelected(ctx context.Context) error {
	if err := s.storage.Set(ctx, storage.KeyLocationModalShown, "true"); err != nil {
		return errs.Wrap(err, "mark location selected")
	}
	return nil
}

// IsFirstVisit is true only when neither a stored selection nor the first-visit flag exists.
func (s *Store) IsFirstVisit(ctx context.Context) bool {
	_, hasLocation, err := s.storage.Get(ctx, storage.KeySelectedLocation)
	if err != nil {
		hasLocation = s.HasSelectedLocation()
	}
	_, visited, err := s.storage.Get(ctx, storage.KeyLocationModalShown)
	if err != nil {
		visited = false
	}
	return !hasLocation && !visited
}

// ClearLocationData drops the selection and the first-visit flag.
func (s *Store) ClearLocationData(ctx context.Context) error {
	err := storage.RemoveAll(ctx, s.storage, storage.KeySelectedLocation, storage.KeyLocationModalShown)

	s.replace(nil, false)
	s.logger.Info("Location data cleared")
	return err
}

// Subscribe registers fn and immediately hands it the current selection.
// The returned func unsubscribes.
func (s *Store) Subscribe(fn Listener) func() {
	s.notifyMu.Lock()
	sub := &subscriber{id: s.nextID, fn: fn}
	s.nextID++
	s.subs = append(s.subs, sub)
	s.deliver(sub, s.SelectedLocation(), false)
	s.notifyMu.Unlock()

	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(x *subscriber) bool { return x.id == sub.id })
	}
}

// replace swaps the selection and publishes it under notifyMu, so subscribers
// observe changes in the order they were made.
func (s *Store) replace(loc *location.Location, force bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.current = loc
	s.mu.Unlock()

	for _, sub := range s.subs {
		s.deliver(sub, loc, force)
	}
}

func (s *Store) deliver(sub *subscriber, loc *location.Location, force bool) {
	if sub.seen && !force && location.SameIdentity(sub.lastSeen, loc) {
		return
	}
	sub.seen = true
	sub.lastSeen = loc
	var arg *location.Location
	if loc != nil {
		cp := *loc
		arg = &cp
	}
	sub.fn(arg)
}
