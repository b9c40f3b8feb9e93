package drainage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/schema.json
var schemaDocument []byte

const schemaURL = "schema://drainage.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var parsed any
	if err := json.Unmarshal(schemaDocument, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateSchema checks the raw document shape. Malformed JSON and schema
// compile failures are returned as err; shape violations as problems.
func validateSchema(data []byte) ([]string, error) {
	compiled, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	err = compiled.Validate(parsed)
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}
	return flattenValidation(verr), nil
}

func flattenValidation(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/"
		if len(verr.InstanceLocation) > 0 {
			loc = ""
			for _, tok := range verr.InstanceLocation {
				loc += "/" + tok
			}
		}
		return []string{fmt.Sprintf("%s: violates %s", loc, strings.Join(verr.ErrorKind.KeywordPath(), "/"))}
	}
	var out []string
	for _, cause := range verr.Causes {
		out = append(out, flattenValidation(cause)...)
	}
	return out
}
