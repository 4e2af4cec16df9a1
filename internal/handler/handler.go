package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AvailabilitySvc interface {
	FindAvailable(ctx context.Context, unitIDs []string, w domain.Window, excludeEventID string) ([]string, error)
	CheckAvailability(ctx context.Context, unitIDs []string, w domain.Window, excludeEventID string) ([]domain.UnitAvailability, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input domain.BookInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	ConfirmAll(ctx context.Context, eventID string) ([]*domain.Booking, error)
	Checkout(ctx context.Context, bookingID string) error
	Checkin(ctx context.Context, bookingID string, condition domain.UnitCondition) error
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
}

type EquipmentSvc interface {
	Register(ctx context.Context, input domain.RegisterUnitInput) (*domain.EquipmentUnit, error)
	SetStatus(ctx context.Context, unitID string, status domain.UnitStatus, reason, actor string) error
	List(ctx context.Context, filter domain.UnitFilter) ([]*domain.EquipmentUnit, error)
	Details(ctx context.Context, unitID string) (*domain.UnitDetails, error)
}

type ReconcileSvc interface {
	ReconcileNow(ctx context.Context) (*domain.ReconcileResult, error)
}

type Handler struct {
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
	equipmentService    EquipmentSvc
	reconcileService    ReconcileSvc
}

func NewHandler(
	availabilityService AvailabilitySvc,
	bookingService BookingSvc,
	equipmentService EquipmentSvc,
	reconcileService ReconcileSvc,
) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		bookingService:      bookingService,
		equipmentService:    equipmentService,
		reconcileService:    reconcileService,
	}
}

// Availability

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	window, ok := parseWindow(c, req.WindowStart, req.WindowEnd)
	if !ok {
		return
	}

	results, err := h.availabilityService.CheckAvailability(c.Request.Context(), req.UnitIDs, window, req.ExcludeEventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AvailabilityResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.ToAvailabilityResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) FindAvailable(c *ginext.Context) {
	var req dto.FindAvailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	window, ok := parseWindow(c, req.WindowStart, req.WindowEnd)
	if !ok {
		return
	}

	unitIDs, err := h.availabilityService.FindAvailable(c.Request.Context(), req.UnitIDs, window, req.ExcludeEventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FindAvailableResponse{UnitIDs: unitIDs})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.BookInput{
		UnitID:  req.UnitID,
		EventID: req.EventID,
		Notes:   req.Notes,
	}
	if req.ReservedFrom != nil {
		from, err := time.Parse(time.RFC3339, *req.ReservedFrom)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reserved_from, expected RFC3339"})
			return
		}
		input.ReservedFrom = &from
	}
	if req.ReservedUntil != nil {
		until, err := time.Parse(time.RFC3339, *req.ReservedUntil)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reserved_until, expected RFC3339"})
			return
		}
		input.ReservedUntil = &until
	}

	booking, err := h.bookingService.Book(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CheckoutBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.Checkout(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "checked_out"})
}

func (h *Handler) CheckinBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Checkin(c.Request.Context(), id, domain.UnitCondition(req.Condition)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "returned"})
}

func (h *Handler) ConfirmEventBookings(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	confirmed, err := h.bookingService.ConfirmAll(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(confirmed))
	for _, b := range confirmed {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListEventBookings(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Units

func (h *Handler) RegisterUnit(c *ginext.Context) {
	var req dto.RegisterUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	unit, err := h.equipmentService.Register(c.Request.Context(), domain.RegisterUnitInput{
		Name:         req.Name,
		Category:     req.Category,
		SerialNumber: req.SerialNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

func (h *Handler) ListUnits(c *ginext.Context) {
	filter := domain.UnitFilter{
		Category: c.Query("category"),
		Status:   domain.UnitStatus(c.Query("status")),
	}

	units, err := h.equipmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		resp = append(resp, dto.ToUnitResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUnit(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.equipmentService.Details(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitDetailsResponse(details))
}

func (h *Handler) SetUnitStatus(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetUnitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.equipmentService.SetStatus(c.Request.Context(), id, domain.UnitStatus(req.Status), req.Reason, req.Actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

// Reconciliation

func (h *Handler) Reconcile(c *ginext.Context) {
	result, err := h.reconcileService.ReconcileNow(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(result))
}

func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

func parseWindow(c *ginext.Context, start, end string) (domain.Window, bool) {
	from, err := time.Parse(time.RFC3339, start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid window_start, expected RFC3339"})
		return domain.Window{}, false
	}
	until, err := time.Parse(time.RFC3339, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid window_end, expected RFC3339"})
		return domain.Window{}, false
	}
	return domain.Window{From: from, Until: until}, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingConflict),
		errors.Is(err, domain.ErrDuplicateSerial),
		errors.Is(err, domain.ErrStatusRace),
		errors.Is(err, domain.ErrReconcileInProgress):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
