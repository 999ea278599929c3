// Package schema provides JSON schema validation for aocrun configuration and
// the integer ranges accepted for days and years.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/aocrun/schema"
)

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// rangeSchemas caches compiled integer range schemas keyed by their bounds.
var (
	rangeMu      sync.Mutex
	rangeSchemas = map[[2]int]*jsonschema.Schema{}
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		configData, err := schemafs.FS.ReadFile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read config schema: %w", err)
			return
		}

		configDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		if err := compiler.AddResource("config.schema.json", configDoc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		configSchema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateConfig validates JSON data against the config schema.
func ValidateConfig(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// rangeSchema returns the compiled schema for integers in [min, max].
func rangeSchema(min, max int) (*jsonschema.Schema, error) {
	rangeMu.Lock()
	defer rangeMu.Unlock()

	key := [2]int{min, max}
	if s, ok := rangeSchemas[key]; ok {
		return s, nil
	}

	src := fmt.Sprintf(`{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "integer",
  "minimum": %d,
  "maximum": %d
}`, min, max)

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("unmarshal range schema: %w", err)
	}

	url := fmt.Sprintf("range-%d-%d.schema.json", min, max)
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add range schema resource: %w", err)
	}

	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile range schema: %w", err)
	}

	rangeSchemas[key] = s
	return s, nil
}

// ValidateIntRange validates that v is an integer within [min, max].
// The returned error describes the violated keyword; callers that need
// the bounds should keep them at hand.
func ValidateIntRange(v, min, max int) error {
	s, err := rangeSchema(min, max)
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(strconv.Itoa(v)))
	if err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}

	return s.Validate(inst)
}

// ToJSON converts a decoded YAML or JSON document into JSON bytes suitable for
// ValidateConfig. yaml.v3 decodes mappings into map[string]interface{}, which
// encoding/json handles directly.
func ToJSON(doc any) ([]byte, error) {
	if doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(doc)
}
