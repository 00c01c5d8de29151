//go:build unit

package listing_test

import "time"

const (
	timeout   = time.Second
	tick      = time.Millisecond
	shortWait = 20 * time.Millisecond
)
