package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/handler/dto"
	hmocks "github.com/TsepisoMotloung/trinity-equipment/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockAvailabilitySvc, *hmocks.MockBookingSvc, *hmocks.MockEquipmentSvc, *hmocks.MockReconcileSvc, http.Handler) {
	t.Helper()
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	equipmentSvc := hmocks.NewMockEquipmentSvc(t)
	reconcileSvc := hmocks.NewMockReconcileSvc(t)

	h := NewHandler(availabilitySvc, bookingSvc, equipmentSvc, reconcileSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/availability/check", h.CheckAvailability)
		api.POST("/availability/find", h.FindAvailable)

		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/bookings/:id/checkout", h.CheckoutBooking)
		api.POST("/bookings/:id/checkin", h.CheckinBooking)

		api.POST("/events/:id/confirm-bookings", h.ConfirmEventBookings)
		api.GET("/events/:id/bookings", h.ListEventBookings)

		api.POST("/units", h.RegisterUnit)
		api.GET("/units", h.ListUnits)
		api.GET("/units/:id", h.GetUnit)
		api.POST("/units/:id/status", h.SetUnitStatus)

		api.POST("/reconcile", h.Reconcile)
	}

	return availabilitySvc, bookingSvc, equipmentSvc, reconcileSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Availability ---

func TestHandler_CheckAvailability_Success(t *testing.T) {
	availabilitySvc, _, _, _, r := setupRouter(t)

	u1 := uuid.New().String()
	u2 := uuid.New().String()

	availabilitySvc.EXPECT().CheckAvailability(mock.Anything, []string{u1, u2}, mock.Anything, "").
		Return([]domain.UnitAvailability{
			{UnitID: u1, Available: true},
			{UnitID: u2, Available: false, Reason: "unit status is DAMAGED"},
		}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/availability/check", dto.CheckAvailabilityRequest{
		UnitIDs:     []string{u1, u2},
		WindowStart: "2025-03-01T09:00:00Z",
		WindowEnd:   "2025-03-01T17:00:00Z",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].Available)
	assert.False(t, resp[1].Available)
	assert.Equal(t, "unit status is DAMAGED", resp[1].Reason)
}

func TestHandler_CheckAvailability_BadWindow(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/availability/check", dto.CheckAvailabilityRequest{
		UnitIDs:     []string{uuid.New().String()},
		WindowStart: "tomorrow",
		WindowEnd:   "2025-03-01T17:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "window_start")
}

func TestHandler_FindAvailable_Success(t *testing.T) {
	availabilitySvc, _, _, _, r := setupRouter(t)

	u1 := uuid.New().String()
	u2 := uuid.New().String()
	eventID := uuid.New().String()

	availabilitySvc.EXPECT().FindAvailable(mock.Anything, []string{u1, u2}, mock.Anything, eventID).
		Return([]string{u2}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/availability/find", dto.FindAvailableRequest{
		UnitIDs:        []string{u1, u2},
		WindowStart:    "2025-03-01T09:00:00Z",
		WindowEnd:      "2025-03-01T17:00:00Z",
		ExcludeEventID: eventID,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.FindAvailableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{u2}, resp.UnitIDs)
}

func TestHandler_FindAvailable_BadWindow(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/availability/find", dto.FindAvailableRequest{
		UnitIDs:     []string{uuid.New().String()},
		WindowStart: "2025-03-01T09:00:00Z",
		WindowEnd:   "later",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "window_end")
}

func TestHandler_CheckAvailability_EmptyUnits(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/availability/check", dto.CheckAvailabilityRequest{
		UnitIDs:     []string{},
		WindowStart: "2025-03-01T09:00:00Z",
		WindowEnd:   "2025-03-01T17:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	unitID := uuid.New().String()
	eventID := uuid.New().String()
	from := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UnitID:        unitID,
		EventID:       eventID,
		ReservedFrom:  &from,
		ReservedUntil: &until,
		Status:        domain.BookingStatusPending,
		CreatedAt:     time.Now(),
	}

	bookingSvc.EXPECT().Book(mock.Anything, mock.MatchedBy(func(in domain.BookInput) bool {
		return in.UnitID == unitID && in.EventID == eventID &&
			in.ReservedFrom != nil && in.ReservedFrom.Equal(from)
	})).Return(booking, nil)

	fromStr := from.Format(time.RFC3339)
	untilStr := until.Format(time.RFC3339)
	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		UnitID:        unitID,
		EventID:       eventID,
		ReservedFrom:  &fromStr,
		ReservedUntil: &untilStr,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	require.NotNil(t, resp.ReservedFrom)
	assert.Equal(t, fromStr, *resp.ReservedFrom)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: overlaps booking b0", domain.ErrBookingConflict))

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		UnitID:  uuid.New().String(),
		EventID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "overlaps booking b0")
}

func TestHandler_CreateBooking_EventNotFound(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		UnitID:  uuid.New().String(),
		EventID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_InvalidBody(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		UnitID:  "not-a-uuid",
		EventID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_BadReservedFrom(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	bad := "yesterday"
	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		UnitID:       uuid.New().String(),
		EventID:      uuid.New().String(),
		ReservedFrom: &bad,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "reserved_from")
}

func TestHandler_GetBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	booking := &domain.Booking{
		ID:        id,
		UnitID:    uuid.New().String(),
		EventID:   uuid.New().String(),
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}

	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(booking, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid id", resp.Error)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
}

func TestHandler_CancelBooking_InvalidTransition(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id).
		Return(fmt.Errorf("%w: booking is RETURNED", domain.ErrInvalidTransition))

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_CheckoutBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Checkout(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/checkout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "checked_out")
}

func TestHandler_CheckinBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Checkin(mock.Anything, id, domain.ConditionDamaged).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/checkin", dto.CheckinRequest{
		Condition: "DAMAGED",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "returned")
}

func TestHandler_CheckinBooking_BadCondition(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/checkin", dto.CheckinRequest{
		Condition: "WET",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_ConfirmEventBookings_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	confirmed := []*domain.Booking{
		{ID: uuid.New().String(), EventID: eventID, Status: domain.BookingStatusConfirmed, CreatedAt: time.Now()},
		{ID: uuid.New().String(), EventID: eventID, Status: domain.BookingStatusConfirmed, CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().ConfirmAll(mock.Anything, eventID).Return(confirmed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/confirm-bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "CONFIRMED", resp[0].Status)
}

func TestHandler_ListEventBookings_Empty(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	bookingSvc.EXPECT().ListByEvent(mock.Anything, eventID).Return([]*domain.Booking{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// --- Units ---

func TestHandler_RegisterUnit_Success(t *testing.T) {
	_, _, equipmentSvc, _, r := setupRouter(t)

	unit := &domain.EquipmentUnit{
		ID:            uuid.New().String(),
		Name:          "Canon EOS R5",
		Category:      "camera",
		SerialNumber:  "CAM-001",
		CurrentStatus: domain.UnitStatusAvailable,
		CreatedAt:     time.Now(),
	}

	equipmentSvc.EXPECT().Register(mock.Anything, domain.RegisterUnitInput{
		Name:         "Canon EOS R5",
		Category:     "camera",
		SerialNumber: "CAM-001",
	}).Return(unit, nil)

	w := doJSON(t, r, http.MethodPost, "/api/units", dto.RegisterUnitRequest{
		Name:         "Canon EOS R5",
		Category:     "camera",
		SerialNumber: "CAM-001",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, unit.ID, resp.ID)
	assert.Equal(t, "AVAILABLE", resp.CurrentStatus)
}

func TestHandler_RegisterUnit_DuplicateSerial(t *testing.T) {
	_, _, equipmentSvc, _, r := setupRouter(t)

	equipmentSvc.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domain.ErrDuplicateSerial)

	w := doJSON(t, r, http.MethodPost, "/api/units", dto.RegisterUnitRequest{
		Name:         "Canon EOS R5",
		Category:     "camera",
		SerialNumber: "CAM-001",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterUnit_MissingFields(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/units", dto.RegisterUnitRequest{
		Name: "Canon EOS R5",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUnits_WithFilters(t *testing.T) {
	_, _, equipmentSvc, _, r := setupRouter(t)

	units := []*domain.EquipmentUnit{
		{ID: uuid.New().String(), Name: "Shure SM58", Category: "audio", SerialNumber: "MIC-004", CurrentStatus: domain.UnitStatusAvailable, CreatedAt: time.Now()},
	}

	equipmentSvc.EXPECT().List(mock.Anything, domain.UnitFilter{
		Category: "audio",
		Status:   domain.UnitStatusAvailable,
	}).Return(units, nil)

	w := doJSON(t, r, http.MethodGet, "/api/units?category=audio&status=AVAILABLE", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "audio", resp[0].Category)
}

func TestHandler_ListUnits_InvalidStatus(t *testing.T) {
	_, _, equipmentSvc, _, r := setupRouter(t)

	equipmentSvc.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown status BROKEN", domain.ErrValidation))

	w := doJSON(t, r, http.MethodGet, "/api/units?status=BROKEN", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUnit_Success(t *testing.T) {
	_, _, equipmentSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	details := &domain.UnitDetails{
		Unit: domain.EquipmentUnit{
			ID:            id,
			Name:          "Canon EOS R5",
			Category:      "camera",
			SerialNumber:  "CAM-001",
			CurrentStatus: domain.UnitStatusReserved,
			CreatedAt:     time.Now(),
		},
		ActiveBookings: []domain.Booking{
			{ID: uuid.New().String(), UnitID: id, EventID: uuid.New().String(), Status: domain.BookingStatusConfirmed, CreatedAt: time.Now()},
		},
		History: []domain.StatusHistoryEntry{
			{UnitID: id, NewStatus: domain.UnitStatusAvailable, Reason: "registered", Actor: "system", CreatedAt: time.Now()},
			{UnitID: id, PreviousStatus: domain.UnitStatusAvailable, NewStatus: domain.UnitStatusReserved, Reason: "booking confirmed", Actor: "system", CreatedAt: time.Now()},
		},
	}

	equipmentSvc.EXPECT().Details(mock.Anything, id).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/units/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UnitDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.Unit.ID)
	require.Len(t, resp.ActiveBookings, 1)
	require.Len(t, resp.History, 2)
	assert.Equal(t, "RESERVED", resp.History[1].NewStatus)
}

func TestHandler_SetUnitStatus_Success(t *testing.T) {
	_, _, equipmentSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	equipmentSvc.EXPECT().SetStatus(mock.Anything, id, domain.UnitStatusUnderRepair, "lens jammed", "alice").
		Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/units/"+id+"/status", dto.SetUnitStatusRequest{
		Status: "UNDER_REPAIR",
		Reason: "lens jammed",
		Actor:  "alice",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UNDER_REPAIR")
}

func TestHandler_SetUnitStatus_RejectsDerived(t *testing.T) {
	_, _, equipmentSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	equipmentSvc.EXPECT().SetStatus(mock.Anything, id, domain.UnitStatusReserved, "force it", "alice").
		Return(fmt.Errorf("%w: RESERVED is derived from bookings", domain.ErrValidation))

	w := doJSON(t, r, http.MethodPost, "/api/units/"+id+"/status", dto.SetUnitStatusRequest{
		Status: "RESERVED",
		Reason: "force it",
		Actor:  "alice",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reconciliation ---

func TestHandler_Reconcile_Success(t *testing.T) {
	_, _, _, reconcileSvc, r := setupRouter(t)

	result := &domain.ReconcileResult{
		Processed:    3,
		Transitioned: 2,
		Failures: []domain.ReconcileFailure{
			{BookingID: uuid.New().String(), UnitID: uuid.New().String(), Err: errors.New("db error")},
		},
	}

	reconcileSvc.EXPECT().ReconcileNow(mock.Anything).Return(result, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reconcile", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReconcileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Processed)
	assert.Equal(t, 2, resp.Transitioned)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "db error", resp.Failures[0].Error)
}

func TestHandler_Reconcile_InProgress(t *testing.T) {
	_, _, _, reconcileSvc, r := setupRouter(t)

	reconcileSvc.EXPECT().ReconcileNow(mock.Anything).Return(nil, domain.ErrReconcileInProgress)

	w := doJSON(t, r, http.MethodPost, "/api/reconcile", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_InternalError_Masked(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, errors.New("pq: connection refused"))

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, resp.Error, "connection refused")
}
