package features

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind distinguishes free numeric fields from enumerated ones.
type Kind int

const (
	KindNumeric Kind = iota
	KindChoice
)

// Choice is one (label, code) pair of an enumerated field.
// Only Code ever reaches the feature vector.
type Choice struct {
	Label string
	Code  float64
}

// Field describes one control of the patient form.
type Field struct {
	Key  string
	Name string
	Help string
	Kind Kind

	// Numeric domain. Max is ignored when HasMax is false.
	Min     float64
	Max     float64
	HasMax  bool
	Step    float64
	Integer bool
	Default float64

	// Enumerated domain. DefaultChoice indexes Choices.
	Choices       []Choice
	DefaultChoice int
}

// DefaultValue returns the value the field holds before the user touches it.
func (f Field) DefaultValue() float64 {
	if f.Kind == KindChoice {
		return f.Choices[f.DefaultChoice].Code
	}
	return f.Default
}

// Validate checks v against the field's domain.
func (f Field) Validate(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &RangeError{Field: f.Key, Value: v, Min: f.Min, Max: f.Max, HasMax: f.HasMax}
	}

	if f.Kind == KindChoice {
		if f.ChoiceIndex(v) < 0 {
			return &UnknownCodeError{Field: f.Key, Code: v}
		}
		return nil
	}

	if v < f.Min || (f.HasMax && v > f.Max) {
		return &RangeError{Field: f.Key, Value: v, Min: f.Min, Max: f.Max, HasMax: f.HasMax}
	}
	if f.Integer && v != math.Trunc(v) {
		return fmt.Errorf("%s: %w", f.Key, ErrNotInteger)
	}
	return nil
}

// ChoiceIndex returns the position of code in Choices, or -1.
func (f Field) ChoiceIndex(code float64) int {
	for i, c := range f.Choices {
		if c.Code == code {
			return i
		}
	}
	return -1
}

// ChoiceLabel returns the display label for code, or "" if unknown.
func (f Field) ChoiceLabel(code float64) string {
	if i := f.ChoiceIndex(code); i >= 0 {
		return f.Choices[i].Label
	}
	return ""
}

// Parse converts user text into a validated field value. Enumerated fields
// accept either a label (case-insensitive) or a code.
func (f Field) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)

	if f.Kind == KindChoice {
		for _, c := range f.Choices {
			if strings.EqualFold(c.Label, s) {
				return c.Code, nil
			}
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if f.Kind == KindChoice {
			return 0, &UnknownCodeError{Field: f.Key, Label: s}
		}
		return 0, fmt.Errorf("%s: invalid number %q", f.Key, s)
	}
	if err := f.Validate(v); err != nil {
		return 0, err
	}
	return v, nil
}

// Format renders v the way the form displays it.
func (f Field) Format(v float64) string {
	if f.Kind == KindChoice {
		if label := f.ChoiceLabel(v); label != "" {
			return label
		}
	}
	if f.Integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', f.decimals(), 64)
}

// DomainString describes the accepted values, e.g. "0..120" or "Female=0, Male=1".
func (f Field) DomainString() string {
	if f.Kind == KindChoice {
		parts := make([]string, 0, len(f.Choices))
		for _, c := range f.Choices {
			parts = append(parts, fmt.Sprintf("%s=%s", c.Label, strconv.FormatFloat(c.Code, 'f', -1, 64)))
		}
		return strings.Join(parts, ", ")
	}
	lo := strconv.FormatFloat(f.Min, 'f', f.decimals(), 64)
	if !f.HasMax {
		return ">= " + lo
	}
	return lo + ".." + strconv.FormatFloat(f.Max, 'f', f.decimals(), 64)
}

func (f Field) decimals() int {
	if f.Integer || f.Step <= 0 || f.Step >= 1 {
		return 0
	}
	return int(math.Round(-math.Log10(f.Step)))
}
