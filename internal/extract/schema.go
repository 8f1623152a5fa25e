package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

// resultSchema accepts any object; the recognised fields are typed when present.
const resultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "text":        {"type": ["string", "null"]},
    "sentiment":   {"type": ["string", "null"]},
    "suggestions": {"type": ["array", "null"], "items": {"type": "string"}},
    "sourceType":  {"type": ["string", "null"]},
    "pageCount":   {"type": ["integer", "null"]},
    "durationMs":  {"type": ["integer", "null"]}
  },
  "additionalProperties": true
}`

var knownFields = []string{"text", "sentiment", "suggestions", "sourceType", "pageCount", "durationMs"}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("analysis.json", bytes.NewReader([]byte(resultSchema))); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("analysis.json")
	})
	return compiled, compileErr
}

// DecodeResult parses an analysis body. The body must be a JSON object;
// recognised fields with the wrong type are dropped rather than failing the
// whole document. The second return lists dropped field names.
func DecodeResult(raw []byte) (models.AnalysisResult, []string, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.AnalysisResult{}, nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return models.AnalysisResult{}, nil, fmt.Errorf("%w: body is not a JSON object", ErrMalformedResponse)
	}

	sch, err := schema()
	if err != nil {
		return models.AnalysisResult{}, nil, err
	}

	var dropped []string
	if err := sch.Validate(obj); err != nil {
		dropped = sanitize(sch, obj)
		if vErr := sch.Validate(obj); vErr != nil {
			return models.AnalysisResult{}, dropped, fmt.Errorf("%w: %v", ErrMalformedResponse, vErr)
		}
	}

	cleaned, err := json.Marshal(obj)
	if err != nil {
		return models.AnalysisResult{}, dropped, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	var out models.AnalysisResult
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return models.AnalysisResult{}, dropped, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out, dropped, nil
}

// sanitize removes each recognised field that fails validation on its own.
func sanitize(sch *jsonschema.Schema, obj map[string]any) []string {
	var dropped []string
	for _, k := range knownFields {
		v, ok := obj[k]
		if !ok {
			continue
		}
		if err := sch.Validate(map[string]any{k: v}); err != nil {
			delete(obj, k)
			dropped = append(dropped, k)
		}
	}
	return dropped
}
