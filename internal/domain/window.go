package domain

import "time"

// Window is a closed time interval. A window with From == Until is a single
// instant and still conflicts with anything that covers it.
type Window struct {
	From  time.Time `json:"from"`
	Until time.Time `json:"until"`
}

// Overlaps uses inclusive semantics: two windows conflict when
// a.From <= b.Until && a.Until >= b.From, so touching edges count.
func (w Window) Overlaps(o Window) bool {
	return !w.From.After(o.Until) && !w.Until.Before(o.From)
}

// Contains reports whether t lies inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.Until)
}

// IsValid reports whether the window is well-formed. Zero-length windows are valid.
func (w Window) IsValid() bool {
	return !w.From.IsZero() && !w.Until.IsZero() && !w.Until.Before(w.From)
}
