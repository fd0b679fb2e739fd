package domain

import (
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

// reportSchema is the contract every persisted report must satisfy.
// A violation here means the aggregation pipeline itself is broken, so
// callers treat it as fatal.
const reportSchema = `{
    "type": "object",
    "properties": {
        "results": {
            "type": "object",
            "additionalProperties": {
                "type": "object",
                "properties": {
                    "error_rate": {
                        "type": "number",
                        "minimum": 0,
                        "maximum": 100
                    },
                    "total": {
                        "type": "integer",
                        "minimum": 0
                    },
                    "time": {
                        "type": "number",
                        "minimum": 0
                    }
                },
                "required": ["error_rate", "total", "time"]
            }
        }
    },
    "required": ["results"]
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateReport checks an encoded report against the report schema.
func ValidateReport(data []byte) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = jsonschema.NewCompiler().Compile([]byte(reportSchema))
	})
	if compileErr != nil {
		return fmt.Errorf("compiling report schema: %w", compileErr)
	}

	result := compiledSchema.ValidateJSON(data)
	if !result.IsValid() {
		return fmt.Errorf("report failed schema validation: %v", result.Errors)
	}
	return nil
}
