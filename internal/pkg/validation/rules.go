package validation

import (
	"regexp"
	"strings"

	"github.com/courator/courator/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Course code pattern - department letters followed by a number,
	// spaces between the two parts are tolerated on input ("cs 100")
	CourseCodePattern = `^([A-Za-z]+) *([0-9]+)$`

	// University code pattern - uppercase alphanumeric short code
	UniversityCodePattern = `^[A-Z0-9]{1,20}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email          *regexp.Regexp
	CourseCode     *regexp.Regexp
	UniversityCode *regexp.Regexp
}{
	Email:          regexp.MustCompile(EmailPattern),
	CourseCode:     regexp.MustCompile(CourseCodePattern),
	UniversityCode: regexp.MustCompile(UniversityCodePattern),
}

// NormalizeCourseCode canonicalizes a raw course code into DEPARTMENT+NUMBER
// uppercase form and returns the code together with its department part.
// "cs 100" becomes code "CS100" with department "CS".
func NormalizeCourseCode(raw string) (code string, departmentCode string, err error) {
	m := CompiledPatterns.CourseCode.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", "", apperrors.ErrInvalidCourseCode
	}

	departmentCode = strings.ToUpper(m[1])
	return departmentCode + m[2], departmentCode, nil
}

// RatingValueInRange reports whether a raw rating value lies in the accepted
// 1..5 input scale.
func RatingValueInRange(value int) bool {
	return value >= 1 && value <= 5
}

// NormalizeRatingValue maps a raw 1..5 rating to the stored [0,1] scale.
func NormalizeRatingValue(value int) float64 {
	return float64(value) / 5.0
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	// Check if required
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
