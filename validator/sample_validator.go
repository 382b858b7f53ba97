package validator

import (
	_ "embed"
	"encoding/json"

	"code.cloudfoundry.org/app-perfmon/models"

	"github.com/xeipuuv/gojsonschema"
)

const rootField = "(root)"

//go:embed sample.schema.json
var sampleSchema []byte

type SampleValidator struct {
	schema *gojsonschema.Schema
}

func NewSampleValidator() (*SampleValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(sampleSchema))
	if err != nil {
		return nil, err
	}
	return &SampleValidator{schema: schema}, nil
}

// Validate checks raw against the sample schema and decodes it. On rejection
// the returned models.ValidationErrors names every violated field.
func (v *SampleValidator) Validate(raw []byte) (*models.Sample, error) {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, models.ValidationErrors{{Field: rootField, Description: err.Error()}}
	}
	if !result.Valid() {
		return nil, getErrorsObject(result.Errors())
	}

	sample := &models.Sample{}
	if err := json.Unmarshal(raw, sample); err != nil {
		return nil, models.ValidationErrors{{Field: rootField, Description: err.Error()}}
	}
	return sample, nil
}

func getErrorsObject(resErr []gojsonschema.ResultError) models.ValidationErrors {
	var validationErrors models.ValidationErrors
	for _, err := range resErr {
		validationErrors = append(validationErrors, models.FieldError{
			Field:       fieldOf(err),
			Description: err.Description(),
		})
	}
	return validationErrors
}

// fieldOf names the offending property. Missing properties are reported
// against their parent object, so the property name is appended.
func fieldOf(err gojsonschema.ResultError) string {
	field := err.Field()
	if err.Type() != "required" {
		return field
	}
	property, ok := err.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == rootField {
		return property
	}
	return field + "." + property
}
