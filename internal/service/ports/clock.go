package ports

import "time"

// Clock is injected wherever "now" matters, so tests can reconcile at a chosen
// point in time instead of waiting for the wall clock.
type Clock interface {
	Now() time.Time
}
