package inventory

// InventoryConfig represents the top-level structure of inventory.yaml.
// Exports use dynamic group keys, so we parse as []map[string][]HostProps.
type InventoryConfig []map[string][]HostProps

// HostProps contains one inventory entry. Only the name feeds the decoder;
// the rest is operator bookkeeping carried through as-is.
type HostProps struct {
	Name  string `yaml:"name"`
	Owner string `yaml:"owner,omitempty"`
	Notes string `yaml:"notes,omitempty"`
}
