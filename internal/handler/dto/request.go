package dto

type CheckAvailabilityRequest struct {
	UnitIDs        []string `json:"unit_ids" binding:"required,min=1"`
	WindowStart    string   `json:"window_start" binding:"required"`
	WindowEnd      string   `json:"window_end" binding:"required"`
	ExcludeEventID string   `json:"exclude_event_id"`
}

type FindAvailableRequest struct {
	UnitIDs        []string `json:"unit_ids" binding:"required,min=1"`
	WindowStart    string   `json:"window_start" binding:"required"`
	WindowEnd      string   `json:"window_end" binding:"required"`
	ExcludeEventID string   `json:"exclude_event_id"`
}

type BookRequest struct {
	UnitID        string  `json:"unit_id" binding:"required,uuid"`
	EventID       string  `json:"event_id" binding:"required,uuid"`
	ReservedFrom  *string `json:"reserved_from"`
	ReservedUntil *string `json:"reserved_until"`
	Notes         string  `json:"notes"`
}

type CheckinRequest struct {
	Condition string `json:"condition" binding:"required,oneof=GOOD DAMAGED"`
}

type RegisterUnitRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
}

type SetUnitStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
	Actor  string `json:"actor" binding:"required"`
}
