package domain

import (
	"errors"
	"time"
)

// Anomaly reasons. An anomaly records an inventory hostname the decoder
// could not parse, so operators can fix the name at the source.
const (
	AnomalyInvalidInput = "invalid_input"
	AnomalyUnrecognized = "unrecognized_naming_convention"
)

// Anomaly represents an inventory entry that failed to decode.
//
// Anomalies are bookkeeping about inputs, not decoded output: they carry the
// offending hostname and the failure kind, never a partial record.
type Anomaly struct {
	// ID is the canonical unique identifier, the lower-cased hostname.
	ID string

	// Hostname is the name as it appeared in the inventory.
	Hostname string

	// Reason is one of the Anomaly* constants.
	Reason string

	// Count is the number of decode sweeps that reproduced the failure.
	Count int64

	// FirstSeenAt is the first sweep that recorded the failure.
	FirstSeenAt time.Time

	// LastSeenAt is updated on every sweep that reproduces it.
	LastSeenAt time.Time

	// UpdatedAt is updated on any mutation.
	UpdatedAt time.Time

	// Disabled marks an anomaly as resolved (the hostname decodes again or
	// left the inventory). It may be garbage-collected later.
	Disabled bool
}

// ReasonForDecodeError classifies a decoder error into an anomaly reason.
// Returns an empty string for nil or unknown errors.
func ReasonForDecodeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return AnomalyInvalidInput
	case errors.Is(err, ErrUnrecognizedNamingConvention):
		return AnomalyUnrecognized
	default:
		return ""
	}
}
