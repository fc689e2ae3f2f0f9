package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestValidateRecordJSONAcceptsBlankDefaults(t *testing.T) {
	payload, err := json.Marshal(types.NewRecord())
	require.NoError(t, err)

	assert.NoError(t, ValidateRecordJSON(string(payload)))
}

func TestValidateRecordJSONAcceptsPopulatedRecord(t *testing.T) {
	record := types.NewRecord()
	record.PersonalInfo.Name = "Jane Doe"
	record.Summary = "Backend engineer."
	record.Experience = []types.Experience{{Title: "Engineer", Company: "Acme", Duration: "2020 - 2024", Description: "Shipped things"}}
	record.Skills = []string{"Go", "PostgreSQL"}

	payload, err := json.Marshal(record)
	require.NoError(t, err)

	assert.NoError(t, ValidateRecordJSON(string(payload)))
}

func TestValidateRecordJSONRejectsWrongFieldType(t *testing.T) {
	err := ValidateRecordJSON(`{"summary": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "summary", validationErr.Errors[0].Field)
}

func TestValidateRecordJSONRejectsNonStringSkills(t *testing.T) {
	err := ValidateRecordJSON(`{"skills": [1, 2, 3]}`)
	assert.Error(t, err)
}

func TestValidateRecordJSONToleratesUnknownFields(t *testing.T) {
	assert.NoError(t, ValidateRecordJSON(`{"summary": "ok", "future_field": true}`))
}

func TestValidateJSONStringReportsSchemaLoadFailure(t *testing.T) {
	err := ValidateJSONString(`{"type": nonsense}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
