package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconcilerFixture struct {
	bookingRepo   *mocks.MockBookingRepo
	equipmentRepo *mocks.MockEquipmentRepo
	eventRepo     *mocks.MockEventRepo
	sink          *mocks.MockEventSink
	clock         *mocks.MockClock
	reconciler    *Reconciler
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()
	f := &reconcilerFixture{
		bookingRepo:   mocks.NewMockBookingRepo(t),
		equipmentRepo: mocks.NewMockEquipmentRepo(t),
		eventRepo:     mocks.NewMockEventRepo(t),
		sink:          mocks.NewMockEventSink(t),
		clock:         mocks.NewMockClock(t),
	}
	log := newTestLogger(t)
	recomputer := NewStatusRecomputer(f.equipmentRepo, f.bookingRepo, f.sink, log)
	f.reconciler = NewReconciler(f.bookingRepo, f.eventRepo, recomputer, f.sink, f.clock, log)
	return f
}

func TestReconciler_ExpiresConfirmedBooking(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	expired := &domain.Booking{
		ID: "b1", UnitID: "u1", EventID: "e1",
		ReservedUntil: &until,
		Status:        domain.BookingStatusConfirmed,
	}
	unit := availableUnit()
	unit.CurrentStatus = domain.UnitStatusReserved

	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).Return(nil, nil)
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, now).Return([]*domain.Booking{expired}, nil)
	f.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusReturned).
		Return(nil)
	f.equipmentRepo.EXPECT().GetByID(mock.Anything, "u1").Return(unit, nil)
	f.bookingRepo.EXPECT().FindActiveForUnit(mock.Anything, "u1").Return(nil, nil)
	f.equipmentRepo.EXPECT().
		UpdateStatus(mock.Anything, "u1", domain.UnitStatusReserved, domain.UnitStatusAvailable, mock.Anything, "system").
		Return(nil)
	f.sink.EXPECT().Emit(mock.Anything, domain.EventUnitStatusChanged, mock.Anything).Return()
	f.sink.EXPECT().Emit(mock.Anything, domain.EventReservationExpired, mock.Anything).Return()
	f.sink.EXPECT().Emit(mock.Anything, domain.EventBookingReturned, mock.Anything).Return()

	result, err := f.reconciler.Reconcile(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Transitioned)
	assert.Empty(t, result.Failures)
}

func TestReconciler_CheckedOutPastWindow_Untouched(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	checkedOut := &domain.Booking{ID: "b1", UnitID: "u1", EventID: "e1", Status: domain.BookingStatusCheckedOut}

	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).Return(nil, nil)
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, now).Return([]*domain.Booking{checkedOut}, nil)

	result, err := f.reconciler.Reconcile(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Transitioned, "checked-out gear waits for explicit checkin")
	assert.Empty(t, result.Failures)
}

func TestReconciler_StartsEvent(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	event := testEvent()
	starting := []*domain.Booking{
		{ID: "b1", UnitID: "u1", EventID: "e1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", UnitID: "u2", EventID: "e1", Status: domain.BookingStatusConfirmed},
	}

	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).Return(starting, nil)
	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Once()
	f.eventRepo.EXPECT().
		UpdateStatus(mock.Anything, "e1", domain.EventStatusConfirmed, domain.EventStatusInProgress).
		Return(nil).Once()
	f.sink.EXPECT().Emit(mock.Anything, domain.EventStarted, mock.Anything).Return().Once()
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, now).Return(nil, nil)

	result, err := f.reconciler.Reconcile(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Transitioned, "one transition per event, not per booking")
}

func TestReconciler_EventAlreadyInProgress_NoOp(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	event := testEvent()
	event.Status = domain.EventStatusInProgress

	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).
		Return([]*domain.Booking{{ID: "b1", UnitID: "u1", EventID: "e1", Status: domain.BookingStatusConfirmed}}, nil)
	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, now).Return(nil, nil)

	result, err := f.reconciler.Reconcile(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Transitioned, "a second pass must not transition again")
	assert.Empty(t, result.Failures)
}

func TestReconciler_LostRaceOnExpiry_SkippedSilently(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	expired := &domain.Booking{ID: "b1", UnitID: "u1", EventID: "e1", Status: domain.BookingStatusConfirmed}

	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).Return(nil, nil)
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, now).Return([]*domain.Booking{expired}, nil)
	f.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusReturned).
		Return(domain.ErrInvalidTransition)

	result, err := f.reconciler.Reconcile(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Transitioned)
	assert.Empty(t, result.Failures, "losing the race to a checkout is not a failure")
}

func TestReconciler_CollectsPerBookingFailures(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	broken := &domain.Booking{ID: "b1", UnitID: "u1", EventID: "e1", ReservedUntil: &until, Status: domain.BookingStatusConfirmed}
	fine := &domain.Booking{ID: "b2", UnitID: "u2", EventID: "e1", ReservedUntil: &until, Status: domain.BookingStatusConfirmed}
	unit2 := availableUnit()
	unit2.ID = "u2"
	unit2.CurrentStatus = domain.UnitStatusReserved

	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).Return(nil, nil)
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, now).Return([]*domain.Booking{broken, fine}, nil)
	f.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusReturned).
		Return(errors.Join(domain.ErrStorage, errors.New("connection reset")))
	f.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b2", domain.BookingStatusConfirmed, domain.BookingStatusReturned).
		Return(nil)
	f.equipmentRepo.EXPECT().GetByID(mock.Anything, "u2").Return(unit2, nil)
	f.bookingRepo.EXPECT().FindActiveForUnit(mock.Anything, "u2").Return(nil, nil)
	f.equipmentRepo.EXPECT().
		UpdateStatus(mock.Anything, "u2", domain.UnitStatusReserved, domain.UnitStatusAvailable, mock.Anything, "system").
		Return(nil)
	f.sink.EXPECT().Emit(mock.Anything, domain.EventUnitStatusChanged, mock.Anything).Return()
	f.sink.EXPECT().Emit(mock.Anything, domain.EventReservationExpired, mock.Anything).Return()
	f.sink.EXPECT().Emit(mock.Anything, domain.EventBookingReturned, mock.Anything).Return()

	result, err := f.reconciler.Reconcile(context.Background(), now)

	require.NoError(t, err, "per-booking failures must not abort the batch")
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Transitioned)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "b1", result.Failures[0].BookingID)
	assert.ErrorIs(t, result.Failures[0].Err, domain.ErrStorage)
}

func TestReconciler_ListFailure_AbortsPass(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Now()

	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).
		Return(nil, errors.Join(domain.ErrStorage, errors.New("timeout")))

	_, err := f.reconciler.Reconcile(context.Background(), now)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestReconciler_SingleFlight(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Now()

	started := make(chan struct{})
	release := make(chan struct{})
	f.bookingRepo.EXPECT().ListStarting(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) ([]*domain.Booking, error) {
			close(started)
			<-release
			return nil, nil
		})
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, mock.Anything).Return(nil, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.reconciler.Reconcile(context.Background(), now)
		assert.NoError(t, err)
	}()

	<-started
	_, err := f.reconciler.Reconcile(context.Background(), now)
	assert.ErrorIs(t, err, domain.ErrReconcileInProgress)

	close(release)
	wg.Wait()
}

func TestReconciler_ReconcileNow_UsesClock(t *testing.T) {
	f := newReconcilerFixture(t)
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	f.clock.EXPECT().Now().Return(now)
	f.bookingRepo.EXPECT().ListStarting(mock.Anything, now).Return(nil, nil)
	f.bookingRepo.EXPECT().ListExpired(mock.Anything, now).Return(nil, nil)

	result, err := f.reconciler.ReconcileNow(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
}
