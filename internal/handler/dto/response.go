package dto

import (
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
)

type UnitResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	SerialNumber  string `json:"serial_number"`
	CurrentStatus string `json:"current_status"`
	CreatedAt     string `json:"created_at"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	UnitID        string  `json:"unit_id"`
	EventID       string  `json:"event_id"`
	ReservedFrom  *string `json:"reserved_from,omitempty"`
	ReservedUntil *string `json:"reserved_until,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type StatusHistoryResponse struct {
	PreviousStatus string `json:"previous_status,omitempty"`
	NewStatus      string `json:"new_status"`
	Reason         string `json:"reason"`
	Actor          string `json:"actor"`
	CreatedAt      string `json:"created_at"`
}

type UnitDetailsResponse struct {
	Unit           UnitResponse            `json:"unit"`
	ActiveBookings []BookingResponse       `json:"active_bookings"`
	History        []StatusHistoryResponse `json:"history"`
}

type FindAvailableResponse struct {
	UnitIDs []string `json:"unit_ids"`
}

type AvailabilityResponse struct {
	UnitID    string `json:"unit_id"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type ReconcileFailureResponse struct {
	BookingID string `json:"booking_id"`
	UnitID    string `json:"unit_id,omitempty"`
	Error     string `json:"error"`
}

type ReconcileResponse struct {
	Processed    int                        `json:"processed"`
	Transitioned int                        `json:"transitioned"`
	Failures     []ReconcileFailureResponse `json:"failures"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUnitResponse(u *domain.EquipmentUnit) UnitResponse {
	return UnitResponse{
		ID:            u.ID,
		Name:          u.Name,
		Category:      u.Category,
		SerialNumber:  u.SerialNumber,
		CurrentStatus: string(u.CurrentStatus),
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		UnitID:    b.UnitID,
		EventID:   b.EventID,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.ReservedFrom != nil {
		from := b.ReservedFrom.Format(time.RFC3339)
		resp.ReservedFrom = &from
	}
	if b.ReservedUntil != nil {
		until := b.ReservedUntil.Format(time.RFC3339)
		resp.ReservedUntil = &until
	}
	return resp
}

func ToUnitDetailsResponse(d *domain.UnitDetails) UnitDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.ActiveBookings))
	for i := range d.ActiveBookings {
		bookings = append(bookings, ToBookingResponse(&d.ActiveBookings[i]))
	}

	history := make([]StatusHistoryResponse, 0, len(d.History))
	for _, h := range d.History {
		history = append(history, StatusHistoryResponse{
			PreviousStatus: string(h.PreviousStatus),
			NewStatus:      string(h.NewStatus),
			Reason:         h.Reason,
			Actor:          h.Actor,
			CreatedAt:      h.CreatedAt.Format(time.RFC3339),
		})
	}

	return UnitDetailsResponse{
		Unit:           ToUnitResponse(&d.Unit),
		ActiveBookings: bookings,
		History:        history,
	}
}

func ToAvailabilityResponse(a domain.UnitAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		UnitID:    a.UnitID,
		Available: a.Available,
		Reason:    a.Reason,
	}
}

func ToReconcileResponse(r *domain.ReconcileResult) ReconcileResponse {
	failures := make([]ReconcileFailureResponse, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, ReconcileFailureResponse{
			BookingID: f.BookingID,
			UnitID:    f.UnitID,
			Error:     f.Err.Error(),
		})
	}

	return ReconcileResponse{
		Processed:    r.Processed,
		Transitioned: r.Transitioned,
		Failures:     failures,
	}
}
