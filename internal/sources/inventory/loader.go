package inventory

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the inventory.yaml host list
type Loader struct {
	filePath string
}

// NewLoader creates a new inventory loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the inventory file
func (l *Loader) Load() (InventoryConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	// Strip export template variables ({{INVENTORY_VAR_...}}) left behind
	// by some reporting tools; they carry nothing the decoder needs.
	data = stripTemplateVariables(data)

	var config InventoryConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse inventory yaml: %w", err)
	}

	return config, nil
}

// stripTemplateVariables removes {{...}} template placeholders from YAML
func stripTemplateVariables(data []byte) []byte {
	re := regexp.MustCompile(`\{\{[^}]+\}\}`)
	return re.ReplaceAll(data, []byte(`""`))
}
