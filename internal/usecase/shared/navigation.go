package shared

import "context"

// Navigation is a view change a flow asks the presentation layer to perform.
type Navigation struct {
	Path   string `json:"path"`
	Notice string `json:"notice,omitempty"`
}

func (n Navigation) IsZero() bool {
	return n.Path == ""
}

type currentPathKey struct{}

// WithCurrentPath records the view the caller is on, for redirect bookmarks.
func WithCurrentPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, currentPathKey{}, path)
}

// CurrentPath returns the path stored by WithCurrentPath, or "/".
func CurrentPath(ctx context.Context) string {
	if p, ok := ctx.Value(currentPathKey{}).(string); ok && p != "" {
		return p
	}
	return "/"
}
