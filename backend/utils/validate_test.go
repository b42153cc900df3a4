package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type batchInput struct {
	BatchID         string `json:"batch_id" validate:"required"`
	CurrentSemester int    `json:"current_semester" validate:"min=1"`
}

func TestValidateReportsJSONNames(t *testing.T) {
	assert.Nil(t, Validate(batchInput{BatchID: "B1", CurrentSemester: 1}))

	fields := Validate(batchInput{})
	assert.Equal(t, map[string]string{
		"batch_id":         "required",
		"current_semester": "min",
	}, fields)
}
