package catalog

import (
	"strings"

	"github.com/opsrig/hostdec/internal/domain"
)

// Mapper merges catalog overrides onto the built-in tables
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapTables builds the final lookup tables: defaults extended by the
// catalog. Codes are lower-cased on the way in so matching and lookups
// stay case-insensitive regardless of how the file was written.
func (m *Mapper) MapTables(config *CatalogConfig) *domain.Tables {
	tables := domain.DefaultTables()
	if config == nil {
		return tables
	}

	for code, name := range config.Datacenters {
		tables.Datacenters[strings.ToLower(code)] = name
	}
	tables.LegacySiteCodes = mergeCodes(tables.LegacySiteCodes, config.LegacySiteCodes)
	if config.LegacyDatacenter != "" {
		tables.LegacyDatacenter = config.LegacyDatacenter
	}
	for code, name := range config.Domains {
		tables.Domains[strings.ToLower(code)] = name
	}
	for code, name := range config.Environments {
		tables.Environments[strings.ToLower(code)] = name
	}
	tables.RetiredClientCodes = mergeCodes(tables.RetiredClientCodes, config.RetiredClientCodes)
	for code, name := range config.Roles {
		tables.Roles[strings.ToLower(code)] = name
	}

	return tables
}

// mergeCodes appends new lower-cased codes, skipping duplicates
func mergeCodes(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, code := range existing {
		seen[code] = true
	}
	for _, code := range extra {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		existing = append(existing, code)
		seen[code] = true
	}
	return existing
}
