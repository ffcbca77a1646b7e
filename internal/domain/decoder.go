package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned for empty or whitespace-only input.
	ErrInvalidInput = errors.New("invalid input: empty host name")

	// ErrUnrecognizedNamingConvention is returned when no rule in the
	// catalog structurally matches the host label.
	ErrUnrecognizedNamingConvention = errors.New("unrecognized naming convention")
)

// Decoder recovers the structured metadata encoded in a server name.
//
// It is pure and side-effect free: immutable tables, a rule catalog compiled
// once, no I/O and no state between calls. A single Decoder is safe for
// concurrent use from any number of goroutines.
type Decoder struct {
	tables *Tables
	rules  []rule
}

// NewDecoder builds a decoder over the given tables. Nil tables means the
// built-in defaults.
func NewDecoder(tables *Tables) *Decoder {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Decoder{
		tables: tables,
		rules:  compileRules(tables),
	}
}

// Decode parses a bare host label or a dot-delimited FQDN into a
// HostNameRecord. There are exactly two failure kinds: ErrInvalidInput and
// ErrUnrecognizedNamingConvention. Lookup misses never fail; they resolve to
// the documented fallback values.
func (d *Decoder) Decode(name string) (*HostNameRecord, error) {
	label, fqdn, err := normalize(name)
	if err != nil {
		return nil, err
	}

	raw, ok := d.match(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedNamingConvention, label)
	}

	return d.mapFields(label, fqdn, raw), nil
}

// normalize splits the input into the host label used for matching and the
// FQDN carried into the record. The label is everything before the first
// dot; without a dot the whole input is the label and the FQDN at once.
func normalize(name string) (label, fqdn string, err error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", ErrInvalidInput
	}

	fqdn = strings.ToLower(trimmed)
	label = trimmed
	if i := strings.IndexByte(trimmed, '.'); i >= 0 {
		label = trimmed[:i]
	}
	return label, fqdn, nil
}

// match runs the ordered catalog top to bottom and returns the first hit.
func (d *Decoder) match(label string) (RawMatch, bool) {
	for i := range d.rules {
		if raw, ok := d.rules[i].apply(label); ok {
			return raw, true
		}
	}
	return RawMatch{}, false
}

// mapFields turns raw codes into final values. Every lookup miss has a
// defined fallback; this step cannot fail.
func (d *Decoder) mapFields(label, fqdn string, raw RawMatch) *HostNameRecord {
	return &HostNameRecord{
		Datacenter:    d.datacenterName(raw.Datacenter),
		Name:          strings.ToUpper(label),
		Domain:        strings.ToLower(d.domainName(raw.DomainSuffix)),
		FQDN:          fqdn,
		ServerCountID: composeServerCountID(raw.Number, raw.Set),
		Environment:   d.environmentName(raw.Environment),
		Role:          d.resolveRole(raw.Role),
	}
}

func (d *Decoder) datacenterName(code string) string {
	if name, ok := d.tables.Datacenters[strings.ToLower(code)]; ok {
		return name
	}
	return d.tables.LegacyDatacenter
}

func (d *Decoder) domainName(suffix string) string {
	if suffix == "" {
		return DomainMain
	}
	if name, ok := d.tables.Domains[strings.ToLower(suffix)]; ok {
		return name
	}
	return DomainMain
}

func (d *Decoder) environmentName(code string) string {
	if code == "" {
		return NoneValue
	}
	if name, ok := d.tables.Environments[strings.ToLower(code)]; ok {
		return name
	}
	return NoneValue
}

// resolveRole maps the abbreviation to its descriptive name. An unknown
// abbreviation is not an error: the raw token is returned unchanged so
// legacy role prefixes still yield a usable record.
func (d *Decoder) resolveRole(code string) string {
	if name, ok := d.tables.Roles[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// composeServerCountID builds the instance discriminator from the optional
// number and set letter.
func composeServerCountID(number, set string) string {
	switch {
	case number != "" && set != "":
		return number + "-" + strings.ToUpper(set)
	case number != "":
		return number
	case set != "":
		return strings.ToUpper(set)
	default:
		return NoneValue
	}
}
