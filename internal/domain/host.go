package domain

import "time"

// Host represents one server known to the inventory.
//
// It is NOT tied to the inventory file, Redis or any other source; all
// inputs are merged into this structure. A Host is uniquely identified by
// its lower-cased Hostname. The decoded record is deliberately not part of
// the entity: records are produced fresh on every decode call.
type Host struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	// It MUST be equal to the lower-cased Hostname.
	ID string

	// Hostname is the name as it appears in the inventory: a bare label
	// or a dot-delimited FQDN.
	// Example: cinad02-z.dmz.example.com
	Hostname string

	// ─────────────────────────────
	// Provenance & observation
	// ─────────────────────────────

	// Sources indicates where this host was discovered from.
	// Example: inventory, redis
	Sources []string

	// LastSeenAt is updated whenever the host is observed from any source.
	LastSeenAt time.Time

	// ─────────────────────────────
	// Usage & persistence
	// ─────────────────────────────

	// Counter is the number of decode requests served for this host.
	Counter int64

	// CreatedAt is the first time the host was discovered.
	CreatedAt time.Time

	// UpdatedAt is updated on any mutation.
	UpdatedAt time.Time

	// ─────────────────────────────
	// Liveness & cleanup
	// ─────────────────────────────

	// Disabled marks a host as soft-deleted after it vanished from the
	// inventory. It may be garbage-collected later.
	Disabled bool
}
