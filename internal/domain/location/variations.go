package location

import "strings"

// Variations maps a canonical location name to the spellings that refer to it.
type Variations map[string][]string

// VariationsFrom collects the variations carried by each location.
func VariationsFrom(list []Location) Variations {
	v := make(Variations, len(list))
	for _, l := range list {
		if len(l.Variations) == 0 {
			continue
		}
		key := normalize(l.Name)
		for _, s := range l.Variations {
			v[key] = append(v[key], normalize(s))
		}
	}
	return v
}

// Normalize returns the canonical name for name, or name lower-cased when unknown.
func (v Variations) Normalize(name string) string {
	n := normalize(name)
	if n == "" {
		return ""
	}
	for key, spellings := range v {
		if contains(spellings, n) {
			return key
		}
	}
	return n
}

// Match reports whether a and b are the same place.
func (v Variations) Match(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	for _, spellings := range v {
		if contains(spellings, na) && contains(spellings, nb) {
			return true
		}
	}
	return false
}

// Of lists every known spelling of name.
func (v Variations) Of(name string) []string {
	n := normalize(name)
	if n == "" {
		return nil
	}
	for key, spellings := range v {
		if key == n || contains(spellings, n) {
			return spellings
		}
	}
	return []string{n}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
