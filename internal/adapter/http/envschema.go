package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrInvalidPayload = errors.New("invalid payload")

const coordSchema = `{
  "type": "object",
  "required": ["x", "y"],
  "additionalProperties": false,
  "properties": {
    "x": {"type": "integer"},
    "y": {"type": "integer"}
  }
}`

var environmentSchemaSrc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "size": {"type": "integer", "minimum": 0, "maximum": 64},
    "wumpus": ` + coordSchema + `,
    "gold": ` + coordSchema + `,
    "pits": {"type": "array", "maxItems": 4096, "items": ` + coordSchema + `}
  }
}`

const randomSchemaSrc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "size": {"type": "integer", "minimum": 0, "maximum": 64},
    "seed": {"type": "integer", "minimum": 0}
  }
}`

const presetSchemaSrc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1, "maxLength": 64}
  }
}`

// The action name is only type-checked here; unknown names are refused by
// the rules so the caller gets the session snapshot back.
const actionSchemaSrc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["action"],
  "additionalProperties": false,
  "properties": {
    "action": {"type": "string", "maxLength": 32},
    "direction": {"type": "string", "maxLength": 16},
    "idempotency_key": {"type": "string", "maxLength": 128}
  }
}`

const sessionSchemaSrc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "size": {"type": "integer", "minimum": 0, "maximum": 64}
  }
}`

var (
	environmentSchema = mustCompileSchema("environment.json", environmentSchemaSrc)
	randomSchema      = mustCompileSchema("random.json", randomSchemaSrc)
	presetSchema      = mustCompileSchema("preset.json", presetSchemaSrc)
	actionSchema      = mustCompileSchema("action.json", actionSchemaSrc)
	sessionSchema     = mustCompileSchema("session.json", sessionSchemaSrc)
)

func mustCompileSchema(name, src string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	url := "mem://wumpus/" + name
	if err := c.AddResource(url, strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	s, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return s
}

// decodeValidated checks body against schema and then decodes it into out.
// An empty body is treated as an empty object.
func decodeValidated(body []byte, schema *jsonschema.Schema, out any) error {
	if len(body) == 0 {
		body = []byte("{}")
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s", ErrInvalidPayload, leafMessage(verr))
		}
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func leafMessage(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	loc := verr.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + verr.Message
}
