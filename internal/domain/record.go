package domain

// RawMatch is the uninterpreted output of a rule application: the field
// codes exactly as captured from the host label, before any table lookup.
type RawMatch struct {
	Datacenter   string // site code (always captured)
	Role         string // role abbreviation (always captured, free-form)
	Environment  string // client code, empty when the rule has no env slot
	Number       string // two-digit instance index, empty when absent
	Set          string // set letter a-d, empty when absent
	DomainSuffix string // domain-suffix code, empty when absent
}

// HostNameRecord is the structured metadata recovered from a server name.
type HostNameRecord struct {
	// Datacenter is the full datacenter name.
	Datacenter string `json:"datacenter"`

	// Name is the canonical host token, upper-cased.
	Name string `json:"name"`

	// Domain is the lower-cased network domain (main, dev, test, testdmz, dmz).
	Domain string `json:"domain"`

	// FQDN is the lower-cased fully-qualified name. For bare labels it is
	// the lower-cased input itself, never synthesized and never empty.
	FQDN string `json:"fqdn"`

	// ServerCountID is the composed instance identifier: "<number>-<SET>",
	// the number alone, the set letter alone, or "None".
	ServerCountID string `json:"server_count_id"`

	// Environment is the client designation, or "None".
	Environment string `json:"environment"`

	// Role is the descriptive role name, or the raw abbreviation when the
	// role table has no entry for it.
	Role string `json:"role"`
}
