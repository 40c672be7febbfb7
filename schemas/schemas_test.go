package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/seo-content-engine/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"content_record.schema.json",
	"compliance_report.schema.json",
	"health_report.schema.json",
}

func TestAllSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON")

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "required")
		})
	}
}

func TestSchemas_ValidateExamples(t *testing.T) {
	tests := []struct {
		name      string
		schema    string
		document  string
		wantError bool
	}{
		{"content record", "content_record.schema.json", "../testdata/valid/content_record.json", false},
		{"overlong permalink", "content_record.schema.json", "../testdata/invalid/content_record_long_permalink.json", true},
		{"compliance report", "compliance_report.schema.json", "../testdata/valid/compliance_report.json", false},
		{"health report", "health_report.schema.json", "../testdata/valid/health_report.json", false},
		{"bad health status", "health_report.schema.json", "../testdata/invalid/health_report_bad_status.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSON(tt.schema, tt.document)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*schemas.ValidationError)
			require.True(t, ok, "expected ValidationError, got %T: %v", err, err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}
