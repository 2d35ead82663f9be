package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, fmt.Errorf("parse section: %w", err)
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}
