package params

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// overridesSchema constrains override files to the documented shape:
// topic -> entity tag -> policy -> scalar, where scalars are limited to
// the three representable parameter kinds.
const overridesSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["qos_overrides"],
  "additionalProperties": false,
  "properties": {
    "qos_overrides": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {
          "type": "object",
          "minProperties": 1,
          "additionalProperties": {
            "type": ["boolean", "integer", "string"]
          }
        }
      }
    }
  }
}`

var compiledOverridesSchema = mustCompileOverridesSchema()

func mustCompileOverridesSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	const url = "https://conduitmesh.schemas.local/params/qos_overrides.schema.json"
	if err := c.AddResource(url, strings.NewReader(overridesSchema)); err != nil {
		panic(fmt.Sprintf("params: add overrides schema: %v", err))
	}
	return c.MustCompile(url)
}

// ParseOverrides decodes a YAML override document and flattens it into
// parameter-name to value pairs:
//
//	qos_overrides:
//	  /chatter:
//	    publisher:
//	      reliability: best_effort
//	      depth: 5
//
// becomes {"qos_overrides./chatter.publisher.reliability": "best_effort",
// "qos_overrides./chatter.publisher.depth": 5}. The document is checked
// against the override-file schema before conversion.
func ParseOverrides(data []byte) (map[string]Value, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	if err := validateOverrides(doc); err != nil {
		return nil, err
	}

	topics, _ := doc["qos_overrides"].(map[string]any)
	out := make(map[string]Value)
	for topic, rawEntities := range topics {
		entities, ok := rawEntities.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("overrides for topic %q: expected a mapping", topic)
		}
		for entity, rawPolicies := range entities {
			policies, ok := rawPolicies.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("overrides for %q/%q: expected a mapping", topic, entity)
			}
			for policy, raw := range policies {
				v, err := FromScalar(raw)
				if err != nil {
					return nil, fmt.Errorf("override %s.%s.%s: %w", topic, entity, policy, err)
				}
				out["qos_overrides."+topic+"."+entity+"."+policy] = v
			}
		}
	}
	return out, nil
}

// LoadOverridesFile reads and parses a YAML override file.
func LoadOverridesFile(path string) (map[string]Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load overrides %q: %w", path, err)
	}
	return ParseOverrides(data)
}

// validateOverrides checks doc against the overrides schema. The decoded
// YAML is round-tripped through JSON first since the schema validator
// operates on JSON-decoded instances.
func validateOverrides(doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("overrides: not JSON-representable: %w", err)
	}
	var inst any
	if err := json.Unmarshal(raw, &inst); err != nil {
		return fmt.Errorf("overrides: %w", err)
	}
	if err := compiledOverridesSchema.Validate(inst); err != nil {
		return fmt.Errorf("overrides schema: %w", err)
	}
	return nil
}
