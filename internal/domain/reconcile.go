package domain

// ReconcileFailure records one booking the reconciler could not advance.
// Processing of the rest of the batch continues regardless.
type ReconcileFailure struct {
	BookingID string `json:"booking_id"`
	UnitID    string `json:"unit_id,omitempty"`
	Err       error  `json:"-"`
}

// ReconcileResult is the structured outcome of one reconciliation pass.
type ReconcileResult struct {
	Processed    int                `json:"processed"`
	Transitioned int                `json:"transitioned"`
	Failures     []ReconcileFailure `json:"failures,omitempty"`
}
