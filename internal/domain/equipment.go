package domain

import "time"

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "AVAILABLE"
	UnitStatusReserved    UnitStatus = "RESERVED"
	UnitStatusInUse       UnitStatus = "IN_USE"
	UnitStatusDamaged     UnitStatus = "DAMAGED"
	UnitStatusUnderRepair UnitStatus = "UNDER_REPAIR"
	UnitStatusLost        UnitStatus = "LOST"
	UnitStatusRetired     UnitStatus = "RETIRED"
)

// StatusTier splits unit statuses into two groups: statuses derived from
// booking activity, and statuses set by a person. Reconciliation may only
// write automatic-tier statuses and must leave manual-tier statuses alone.
type StatusTier int

const (
	TierAutomatic StatusTier = iota
	TierManual
)

var statusTiers = map[UnitStatus]StatusTier{
	UnitStatusAvailable:   TierAutomatic,
	UnitStatusReserved:    TierAutomatic,
	UnitStatusInUse:       TierAutomatic,
	UnitStatusDamaged:     TierManual,
	UnitStatusUnderRepair: TierManual,
	UnitStatusLost:        TierManual,
	UnitStatusRetired:     TierManual,
}

// IsValid returns true if the status is a recognized unit status.
func (s UnitStatus) IsValid() bool {
	_, ok := statusTiers[s]
	return ok
}

// Tier returns the tier of the status. Unknown statuses report as automatic;
// callers are expected to validate with IsValid at the boundary.
func (s UnitStatus) Tier() StatusTier {
	return statusTiers[s]
}

// Manual reports whether the status was set by a person and is therefore
// off-limits to the reconciler.
func (s UnitStatus) Manual() bool {
	return statusTiers[s] == TierManual
}

type EquipmentUnit struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	SerialNumber  string     `json:"serial_number"`
	CurrentStatus UnitStatus `json:"current_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// StatusHistoryEntry is one append-only record of a unit status transition.
// PreviousStatus is empty for the entry written at unit registration.
type StatusHistoryEntry struct {
	ID             int64      `json:"id"`
	UnitID         string     `json:"unit_id"`
	PreviousStatus UnitStatus `json:"previous_status,omitempty"`
	NewStatus      UnitStatus `json:"new_status"`
	Reason         string     `json:"reason"`
	Actor          string     `json:"actor"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UnitDetails struct {
	Unit           EquipmentUnit        `json:"unit"`
	ActiveBookings []Booking            `json:"active_bookings"`
	History        []StatusHistoryEntry `json:"history"`
}

type UnitFilter struct {
	Category string
	Status   UnitStatus
}

type RegisterUnitInput struct {
	Name         string
	Category     string
	SerialNumber string
}

// UnitCondition is the condition reported at checkin.
type UnitCondition string

const (
	ConditionGood    UnitCondition = "GOOD"
	ConditionDamaged UnitCondition = "DAMAGED"
)

func (c UnitCondition) IsValid() bool {
	return c == ConditionGood || c == ConditionDamaged
}
