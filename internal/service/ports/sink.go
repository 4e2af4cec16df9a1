package ports

import "context"

// EventSink receives lifecycle events for downstream notification and audit.
// Emit is fire-and-forget: implementations log delivery failures themselves.
type EventSink interface {
	Emit(ctx context.Context, eventType string, payload any)
}
