package budgetconfig

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema for the configuration file format,
// suitable for editor validation and documentation.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		// Inline the File definition: the schema document describes one
		// config file, not a type library.
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&File{})
	schema.Title = "docbudget configuration"
	schema.Description = "Token budget configuration for llms.txt content selection"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
