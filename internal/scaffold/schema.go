package scaffold

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// packageManifestSchema constrains the emitted package.json document.
const packageManifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "version", "description", "license", "scripts", "devDependencies"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string", "pattern": "^[a-z0-9][a-z0-9-]*$" },
    "version": { "type": "string", "pattern": "^[0-9]+\\.[0-9]+\\.[0-9]+$" },
    "description": { "type": "string", "minLength": 1 },
    "license": { "type": "string" },
    "scripts": {
      "type": "object",
      "additionalProperties": { "type": "string" }
    },
    "devDependencies": {
      "type": "object",
      "additionalProperties": { "type": "string" }
    }
  }
}`

// tsConfigSchema constrains the emitted tsconfig.json document.
const tsConfigSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["compilerOptions", "include", "exclude"],
  "properties": {
    "compilerOptions": {
      "type": "object",
      "required": ["target", "module", "strict", "outDir"],
      "properties": {
        "target": { "type": "string" },
        "module": { "type": "string" },
        "strict": { "type": "boolean" },
        "outDir": { "type": "string" }
      }
    },
    "include": { "type": "array", "items": { "type": "string" } },
    "exclude": { "type": "array", "items": { "type": "string" } }
  }
}`

var (
	schemaCacheMu sync.Mutex
	schemaCache   = make(map[string]*jsonschema.Schema)
)

func compiledSchema(name, src string) (*jsonschema.Schema, error) {
	schemaCacheMu.Lock()
	defer schemaCacheMu.Unlock()

	if cached, ok := schemaCache[name]; ok {
		return cached, nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, err
	}

	schemaCache[name] = compiled
	return compiled, nil
}

// marshalValidated renders v as indented JSON and checks the document against
// the named schema before it is written anywhere.
func marshalValidated(name, schemaSrc string, v any) ([]byte, error) {
	schema, err := compiledSchema(name, schemaSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", name, err)
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to normalize document for %s: %w", name, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%s validation failed: %w", name, err)
	}

	return append(raw, '\n'), nil
}
