package validation

import (
	"regexp"
	"unicode/utf8"
)

// Validation rule bounds
var (
	// Name validation min/max length (after trimming)
	NameMinLength = 2
	NameMaxLength = 100

	// Grade bounds on the 4.0 scale
	GradeMin = 0.0
	GradeMax = 4.0
)

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

	// Length rules count characters, not bytes
	length := utf8.RuneCountInString(v.Value)

	// Check min length
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}

	// Check max length
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	// Check pattern
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// Numeric validation
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{
		Value: value,
	}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	// Check min value
	if v.Min != 0 && v.Value < v.Min {
		return false
	}

	// Check max value
	if v.Max != 0 && v.Value > v.Max {
		return false
	}

	return true
}

// Range validation for real-valued inputs such as grades
type RangeValidation struct {
	Value float64
	Min   float64
	Max   float64
}

// NewRangeValidation creates a new range validation over [min, max]
func NewRangeValidation(value, min, max float64) *RangeValidation {
	return &RangeValidation{
		Value: value,
		Min:   min,
		Max:   max,
	}
}

// Validate performs validation
func (v *RangeValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}
