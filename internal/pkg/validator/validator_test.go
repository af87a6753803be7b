package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMonthKey(t *testing.T) {
	valid := []string{"2025-01", "2025-12", "1999-07"}
	for _, m := range valid {
		assert.True(t, IsValidMonthKey(m), m)
	}

	invalid := []string{"", "2025-13", "2025-00", "2025-1", "25-07", "2025/07", "2025-07-01", "July 2025"}
	for _, m := range invalid {
		assert.False(t, IsValidMonthKey(m), m)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-07-31")
	assert.True(t, ok)

	for _, d := range []string{"", "2025-07-32", "2025-02-30", "31-07-2025", "2025-7-1"} {
		_, ok := IsValidDate(d)
		assert.False(t, ok, d)
	}
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("08:30"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("8:30"))
	assert.False(t, IsValidClockTime(""))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "must be a valid email"},
		{Field: "password", Message: "is required"},
	}

	m := errs.ToMap()
	assert.Equal(t, "must be a valid email", m["email"])
	assert.Equal(t, "is required", m["password"])
	assert.NotEmpty(t, errs.Error())
}
