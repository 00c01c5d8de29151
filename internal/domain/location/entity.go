package location

import (
	"errors"
	"strings"
)

var (
	ErrMissingIdentity = errors.New("location has neither id nor slug")
	ErrMissingName     = errors.New("location has no name")
)

// Location is fetched as an immutable list and replaced wholesale on change.
type Location struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug,omitempty"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Variations []string `json:"variations,omitempty"`
	IsDefault  bool     `json:"isDefault,omitempty"`
}

// Key is the identity used for de-duplication: the id, or the slug when the id is empty.
func (l Location) Key() string {
	if l.ID != "" {
		return l.ID
	}
	return l.Slug
}

func (l Location) Validate() error {
	if strings.TrimSpace(l.ID) == "" && strings.TrimSpace(l.Slug) == "" {
		return ErrMissingIdentity
	}
	if strings.TrimSpace(l.Name) == "" {
		return ErrMissingName
	}
	return nil
}

// Matches reports whether ref names this location by id or slug.
func (l Location) Matches(ref string) bool {
	if ref == "" {
		return false
	}
	return l.ID == ref || (l.Slug != "" && l.Slug == ref)
}

// SameIdentity compares by id only; a renamed location with the same id is the same location.
func SameIdentity(a, b *Location) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Key() == b.Key()
}

// FilterValid drops entries that cannot be selected.
func FilterValid(in []Location) []Location {
	out := make([]Location, 0, len(in))
	for _, l := range in {
		if l.Validate() == nil {
			out = append(out, l)
		}
	}
	return out
}

// Find looks a location up by id or slug.
func Find(list []Location, ref string) (Location, bool) {
	for _, l := range list {
		if l.Matches(ref) {
			return l, true
		}
	}
	return Location{}, false
}
