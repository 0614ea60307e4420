package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// PropelYAMLURL identifies the embedded schema for Propel YAML documents.
const PropelYAMLURL = "https://propel-prune.usoltsev.xyz/propel-yml.json"

var errEmptySchema = errors.New("embedded schema is empty")

//go:embed propel.json
var propelBytes []byte

// PropelYAML compiles the embedded JSON schema that a YAML schema file must
// satisfy before table names are read from it.
func PropelYAML() (*jsonschema.Schema, error) {
	b := bytes.TrimSpace(propelBytes)
	if len(b) == 0 {
		return nil, errEmptySchema
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded schema json: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(PropelYAMLURL, doc); err != nil {
		return nil, fmt.Errorf("add embedded schema resource: %w", err)
	}
	s, err := c.Compile(PropelYAMLURL)
	if err != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", err)
	}
	return s, nil
}
