package domain

import "time"

// EventStatus mirrors the lifecycle of the encompassing event. Events are
// owned by the surrounding system; this core only reads them and performs one
// delegated transition, CONFIRMED -> IN_PROGRESS, when a reserved window opens.
type EventStatus string

const (
	EventStatusPending    EventStatus = "PENDING"
	EventStatusConfirmed  EventStatus = "CONFIRMED"
	EventStatusInProgress EventStatus = "IN_PROGRESS"
	EventStatusCompleted  EventStatus = "COMPLETED"
	EventStatusCancelled  EventStatus = "CANCELLED"
)

type Event struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Status    EventStatus `json:"status"`
}

// Window returns the event's own time window.
func (e *Event) Window() Window {
	return Window{From: e.StartDate, Until: e.EndDate}
}
