package notification

import (
	"context"

	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports"
)

// Fanout forwards every event to all configured sinks.
type Fanout struct {
	sinks []ports.EventSink
}

func NewFanout(sinks ...ports.EventSink) *Fanout {
	out := make([]ports.EventSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Fanout{sinks: out}
}

func (f *Fanout) Emit(ctx context.Context, eventType string, payload any) {
	for _, s := range f.sinks {
		s.Emit(ctx, eventType, payload)
	}
}
