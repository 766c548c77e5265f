package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCourseCode(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantCode       string
		wantDepartment string
		wantErr        bool
	}{
		{name: "lowercase with space", raw: "cs 100", wantCode: "CS100", wantDepartment: "CS"},
		{name: "already canonical", raw: "CS100", wantCode: "CS100", wantDepartment: "CS"},
		{name: "mixed case", raw: "MaTh221", wantCode: "MATH221", wantDepartment: "MATH"},
		{name: "multiple spaces", raw: "ee   301", wantCode: "EE301", wantDepartment: "EE"},
		{name: "surrounding whitespace", raw: "  phys 101 ", wantCode: "PHYS101", wantDepartment: "PHYS"},
		{name: "missing number", raw: "CS", wantErr: true},
		{name: "missing department", raw: "100", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "punctuation", raw: "CS-100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, dept, err := NormalizeCourseCode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantDepartment, dept)
		})
	}
}

func TestRatingValueInRange(t *testing.T) {
	assert.False(t, RatingValueInRange(0))
	assert.True(t, RatingValueInRange(1))
	assert.True(t, RatingValueInRange(5))
	assert.False(t, RatingValueInRange(6))
	assert.False(t, RatingValueInRange(-3))
}

func TestNormalizeRatingValue(t *testing.T) {
	assert.InDelta(t, 0.2, NormalizeRatingValue(1), 1e-9)
	assert.InDelta(t, 0.6, NormalizeRatingValue(3), 1e-9)
	assert.InDelta(t, 1.0, NormalizeRatingValue(5), 1e-9)
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("user@example.com").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.False(t, NewStringValidation("a").WithMinLength(2).Validate())
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(3).Validate())
}
