package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const skillRequestSchemaURL = "https://estla.co.kr/schemas/skill-request.json"

// skillRequestSchema only pins down what the fallback reads. Kakao sends far
// more than this and all of it is allowed through.
const skillRequestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "userRequest": {
      "type": "object",
      "properties": {
        "utterance": {"type": "string"}
      }
    }
  }
}`

type payloadValidator struct {
	schema *jsonschema.Schema
}

func newPayloadValidator() (*payloadValidator, error) {
	var doc any
	if err := json.Unmarshal([]byte(skillRequestSchema), &doc); err != nil {
		return nil, fmt.Errorf("parse skill request schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(skillRequestSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add skill request schema: %w", err)
	}
	schema, err := compiler.Compile(skillRequestSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile skill request schema: %w", err)
	}
	return &payloadValidator{schema: schema}, nil
}

func (v *payloadValidator) Validate(body []byte) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return v.schema.Validate(instance)
}
