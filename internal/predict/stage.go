package predict

// Stage is the display form of a classifier label.
type Stage struct {
	Label int
	Text  string
	Color string
}

// stages is indexed by label. The classifier's labels are categorical;
// the "stage" wording is kept as given rather than treated as an ordinal scale.
var stages = [...]Stage{
	{Label: 0, Text: "Less than 50% Diameter Narrowing – No Heart Disease", Color: "green"},
	{Label: 1, Text: "Greater than 50% Diameter Narrowing – Stage 1", Color: "yellow"},
	{Label: 2, Text: "Greater than 50% Diameter Narrowing – Stage 2", Color: "orange"},
	{Label: 3, Text: "Greater than 50% Diameter Narrowing – Stage 3", Color: "red"},
	{Label: 4, Text: "Greater than 50% Diameter Narrowing – Stage 4", Color: "purple"},
}

// Stages returns every known stage in label order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages[:])
	return out
}

// Lookup maps a classifier label to its stage. Labels outside the table
// are an internal inconsistency and never fall back to a default.
func Lookup(label int) (Stage, error) {
	if label < 0 || label >= len(stages) {
		return Stage{}, &LookupError{Label: label}
	}
	return stages[label], nil
}
