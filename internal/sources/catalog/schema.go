package catalog

// CatalogConfig represents catalog.yaml: site-local extensions to the
// built-in naming tables. Every section is optional; entries add to or
// override the defaults, they never remove them.
type CatalogConfig struct {
	Datacenters        map[string]string `yaml:"datacenters,omitempty"`
	LegacySiteCodes    []string          `yaml:"legacy_site_codes,omitempty"`
	LegacyDatacenter   string            `yaml:"legacy_datacenter,omitempty"`
	Domains            map[string]string `yaml:"domains,omitempty"`
	Environments       map[string]string `yaml:"environments,omitempty"`
	RetiredClientCodes []string          `yaml:"retired_client_codes,omitempty"`
	Roles              map[string]string `yaml:"roles,omitempty"`
}
