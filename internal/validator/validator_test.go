package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Age   int    `json:"age" validate:"min=0,max=200"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Email: "not-an-email", Date: "03/10/2026", Age: 300})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "date")
	assert.Contains(t, vErr.Errors, "age")
}

func TestValidatePasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sampleInput{Email: "a@b.com", Date: "2026-03-10", Age: 3}))
}
