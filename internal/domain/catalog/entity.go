package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Ref is a reference the backend sends either as a bare id or as an embedded document.
type Ref struct {
	ID   string
	Name string
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var doc struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	r.ID = doc.MongoID
	if r.ID == "" {
		r.ID = doc.ID
	}
	r.Name = doc.Name
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{r.ID, r.Name})
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Icon string `json:"icon,omitempty"`
}

type Shop struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Location    Ref    `json:"location"`
	Category    Ref    `json:"category"`
	IsFeatured  bool   `json:"isFeatured,omitempty"`
}

// UnmarshalJSON accepts both `id` and `_id`.
func (s *Shop) UnmarshalJSON(b []byte) error {
	type alias Shop
	var raw struct {
		alias
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Shop(raw.alias)
	if s.ID == "" {
		s.ID = raw.MongoID
	}
	return nil
}

// VendorContact prefers the explicit contact over the phone number.
func (s Shop) VendorContact() string {
	if s.Contact != "" {
		return s.Contact
	}
	return s.Phone
}

// ShopQuery filters the shop listing.
type ShopQuery struct {
	Category string
	Search   string
	Location string
}

func (q ShopQuery) Values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	return v
}

// CacheKey is shops_{category|all}_{location|all}_{search}.
func (q ShopQuery) CacheKey() string {
	return fmt.Sprintf("shops_%s_%s_%s", orAll(q.Category), orAll(q.Location), q.Search)
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
