package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed roster.schema.json
var rosterSchemaJSON string

var (
	rosterSchemaOnce sync.Once
	rosterSchema     *jsonschema.Schema
	rosterSchemaErr  error
)

// compileRosterSchema compiles the embedded roster schema on first use.
func compileRosterSchema() (*jsonschema.Schema, error) {
	rosterSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("roster.schema.json", strings.NewReader(rosterSchemaJSON)); err != nil {
			rosterSchemaErr = fmt.Errorf("failed to load roster schema: %w", err)
			return
		}
		rosterSchema, rosterSchemaErr = compiler.Compile("roster.schema.json")
	})
	return rosterSchema, rosterSchemaErr
}

// ValidateRosterBytes checks raw roster file contents against the embedded
// JSON Schema. YAML input is converted to JSON types first so the schema
// sees the same shapes either way.
func ValidateRosterBytes(data []byte, isYAML bool) error {
	schema, err := compileRosterSchema()
	if err != nil {
		return err
	}

	var doc interface{}
	if isYAML {
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		jsonBytes, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("failed to convert YAML to JSON: %w", err)
		}
		if err := json.Unmarshal(jsonBytes, &doc); err != nil {
			return fmt.Errorf("failed to decode converted YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	if err := schema.Validate(doc); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("schema validation failed: %s", formatSchemaError(verr))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// formatSchemaError flattens a validation error tree into the most specific
// leaf message with its instance location.
func formatSchemaError(verr *jsonschema.ValidationError) string {
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s: %s", loc, leaf.Message)
}
