package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseInventory decodes an inventory document and validates its targets.
func parseInventory(data []byte) (*Inventory, error) {
	inv := &Inventory{}
	if err := yaml.Unmarshal(data, inv); err != nil {
		return nil, fmt.Errorf("failed to parse YAML inventory: %w", err)
	}

	for name, target := range inv.Targets {
		if target.ID == "" || target.Hostname == "" || target.Address == "" {
			return nil, fmt.Errorf("inventory target %s must set id, hostname and address", name)
		}
	}

	return inv, nil
}
