package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/synergy360/kiosk/config.schema.json"

var durationType = reflect.TypeOf(time.Duration(0))

// Schema reflects the JSON schema of Config. Durations are described as
// Go duration strings ("5s", "2m") since that is how the TOML file holds them.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == durationType {
				return &jsonschema.Schema{
					Type:        "string",
					Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
					Description: "Go duration string",
				}
			}
			return nil
		},
	}
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "Kiosk Configuration"
	schema.Description = "Configuration schema for the kiosk shell"
	return schema
}

// GenerateSchema returns the schema as indented JSON.
func GenerateSchema() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
