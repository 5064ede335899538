package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed scenario.schema.json
var scenarioSchemaJSON []byte

const scenarioSchemaURL = "mem://schemas/scenario.json"

var (
	schemaOnce     sync.Once
	scenarioSchema *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(scenarioSchemaURL, bytes.NewReader(scenarioSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("adding scenario schema: %w", err)
			return
		}
		scenarioSchema, schemaErr = compiler.Compile(scenarioSchemaURL)
	})
	return scenarioSchema, schemaErr
}

// ValidateSchema performs structural validation of a raw scenario document
// (YAML or JSON) against the embedded JSON Schema.
func ValidateSchema(raw []byte) *Report {
	r := NewReport()

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("document is not valid YAML: %v", err),
		})
		return r
	}

	// Round-trip through JSON so the validator sees plain JSON values.
	data, err := json.Marshal(doc)
	if err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("document cannot be represented as JSON: %v", err),
			Suggestions: []string{"Remove .nan and .inf values"},
		})
		return r
	}
	var instance any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		r.AddError(Result{Level: LevelSchema, Message: err.Error()})
		return r
	}

	schema, err := compiledSchema()
	if err != nil {
		r.AddError(Result{Level: LevelSchema, Message: err.Error()})
		return r
	}

	if err := schema.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			r.AddError(Result{Level: LevelSchema, Message: err.Error()})
			return r
		}
		for _, leaf := range leafCauses(ve) {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  leaf.Message,
				Path:     leaf.InstanceLocation,
				Expected: leaf.KeywordLocation,
			})
		}
	}
	return r
}

// leafCauses flattens a validation error tree to its most specific causes.
func leafCauses(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leafCauses(c)...)
	}
	return out
}
