package features

import "fmt"

// Vector is one patient's encoded inputs in fitting order.
type Vector [NumFeatures]float64

// Row returns the vector as a single-sample row.
func (v Vector) Row() []float64 {
	row := make([]float64, NumFeatures)
	copy(row, v[:])
	return row
}

// DefaultVector returns the vector of an untouched form.
func DefaultVector() Vector {
	var v Vector
	for i, f := range schema {
		v[i] = f.DefaultValue()
	}
	return v
}

// Form holds the current value of every field. The zero Form is not
// usable; call NewForm.
type Form struct {
	values  Vector
	touched [NumFeatures]bool
}

// NewForm returns a form with every field at its default.
func NewForm() *Form {
	return &Form{values: DefaultVector()}
}

// Set stores v for the field named key after checking its domain.
// Enumerated fields take the code, never the label.
func (f *Form) Set(key string, v float64) error {
	field, idx, err := Lookup(key)
	if err != nil {
		return err
	}
	if err := field.Validate(v); err != nil {
		return err
	}
	f.values[idx] = v
	f.touched[idx] = true
	return nil
}

// Select stores the code of the choice at choiceIndex.
func (f *Form) Select(key string, choiceIndex int) error {
	field, idx, err := Lookup(key)
	if err != nil {
		return err
	}
	if field.Kind != KindChoice {
		return fmt.Errorf("%s: not an enumerated field", key)
	}
	if choiceIndex < 0 || choiceIndex >= len(field.Choices) {
		return fmt.Errorf("%s: choice index %d out of range", key, choiceIndex)
	}
	f.values[idx] = field.Choices[choiceIndex].Code
	f.touched[idx] = true
	return nil
}

// Value returns the current value of the field at position idx.
func (f *Form) Value(idx int) float64 {
	return f.values[idx]
}

// Touched reports whether the field at idx was set since the last reset.
func (f *Form) Touched(idx int) bool {
	return f.touched[idx]
}

// Reset restores every default.
func (f *Form) Reset() {
	f.values = DefaultVector()
	f.touched = [NumFeatures]bool{}
}

// Vector returns the complete feature vector.
func (f *Form) Vector() Vector {
	return f.values
}
