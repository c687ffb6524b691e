package features

// NumFeatures is the width of the vector the scaler and classifier were fitted on.
const NumFeatures = 13

// Vector positions, in fitting order.
const (
	IdxAge = iota
	IdxSex
	IdxChestPain
	IdxRestingBP
	IdxCholesterol
	IdxFastingBloodSugar
	IdxRestingECG
	IdxMaxHeartRate
	IdxExerciseAngina
	IdxSTDepression
	IdxSTSlope
	IdxVessels
	IdxThalassemia
)

var noYes = []Choice{{Label: "No", Code: 0}, {Label: "Yes", Code: 1}}

// schema is indexed by vector position.
var schema = [NumFeatures]Field{
	IdxAge: {
		Key: "age", Name: "Age (in years)", Kind: KindNumeric,
		Min: 0, Max: 120, HasMax: true, Step: 1, Integer: true, Default: 30,
		Help: "Enter the age of the patient in years.",
	},
	IdxSex: {
		Key: "sex", Name: "Sex", Kind: KindChoice,
		Choices: []Choice{{Label: "Female", Code: 0}, {Label: "Male", Code: 1}},
		Help:    "Select the sex of the patient.",
	},
	IdxChestPain: {
		Key: "cp", Name: "Chest Pain Type", Kind: KindChoice,
		Choices: []Choice{
			{Label: "Typical Angina", Code: 1},
			{Label: "Atypical Angina", Code: 2},
			{Label: "Non-Anginal Pain", Code: 3},
			{Label: "Asymptomatic", Code: 4},
		},
		Help: "Select the type of chest pain experienced by the patient:\n" +
			"- Typical Angina: A type of chest pain related to heart.\n" +
			"- Atypical Angina: Chest pain not related to heart.\n" +
			"- Non-Anginal Pain: Non-specific chest pain.\n" +
			"- Asymptomatic: No chest pain.",
	},
	IdxRestingBP: {
		Key: "trestbps", Name: "Resting Blood Pressure (in mm Hg)", Kind: KindNumeric,
		Min: 0, Step: 1, Integer: true, Default: 120,
		Help: "Enter the blood pressure reading of the patient on hospital admission.",
	},
	IdxCholesterol: {
		Key: "chol", Name: "Serum Cholestoral (in mg/dl)", Kind: KindNumeric,
		Min: 0, Step: 1, Integer: true, Default: 200,
		Help: "Enter the patient's cholesterol measurement in milligrams per deciliter.",
	},
	IdxFastingBloodSugar: {
		Key: "fbs", Name: "Fasting Blood Sugar > 120 mg/dl", Kind: KindChoice,
		Choices: noYes,
		Help: "Indicate whether the patient's fasting blood sugar is more than 120 mg/dl:\n" +
			"- No: Fasting blood sugar is not more than 120 mg/dl.\n" +
			"- Yes: Fasting blood sugar is more than 120 mg/dl.",
	},
	IdxRestingECG: {
		Key: "restecg", Name: "Resting Electrocardiographic Results", Kind: KindChoice,
		Choices: []Choice{
			{Label: "Normal", Code: 0},
			{Label: "ST-T Wave Abnormality", Code: 1},
			{Label: "Left Ventricular Hypertrophy", Code: 2},
		},
		Help: "Select the results of electrocardiogram measurements at rest:\n" +
			"- Normal: Normal ECG results.\n" +
			"- ST-T Wave Abnormality: Abnormal ECG results related to the ST-T wave.\n" +
			"- Left Ventricular Hypertrophy: Abnormal ECG results indicating left ventricular hypertrophy.",
	},
	IdxMaxHeartRate: {
		Key: "thalach", Name: "Maximum Heart Rate Achieved", Kind: KindNumeric,
		Min: 0, Step: 1, Integer: true, Default: 100,
		Help: "Enter the highest heart rate the patient achieved during a stress test.",
	},
	IdxExerciseAngina: {
		Key: "exang", Name: "Exercise Induced Angina", Kind: KindChoice,
		Choices: noYes,
		Help: "Indicate whether the patient experienced chest pain during exercise:\n" +
			"- No: No chest pain during exercise.\n" +
			"- Yes: Chest pain experienced during exercise.",
	},
	IdxSTDepression: {
		Key: "oldpeak", Name: "ST Depression Induced by Exercise Relative to Rest", Kind: KindNumeric,
		Min: 0, Max: 10, HasMax: true, Step: 0.1, Default: 1.0,
		Help: "This is a measure of heart stress during exercise relative to rest.",
	},
	IdxSTSlope: {
		Key: "slope", Name: "Slope of the Peak Exercise ST Segment", Kind: KindChoice,
		Choices: []Choice{
			{Label: "Upsloping", Code: 1},
			{Label: "Flat", Code: 2},
			{Label: "Downsloping", Code: 3},
		},
		Help: "Select the slope of the peak exercise ST segment, an ECG reading related to heart function:\n" +
			"- Upsloping: Upsloping ST segment during exercise.\n" +
			"- Flat: Flat ST segment during exercise.\n" +
			"- Downsloping: Downsloping ST segment during exercise.",
	},
	IdxVessels: {
		Key: "ca", Name: "Number of Major Vessels Colored by Flourosopy", Kind: KindNumeric,
		Min: 0, Max: 3, HasMax: true, Step: 1, Integer: true, Default: 0,
		Help: "Enter the number of major blood vessels supplying blood to the heart as seen through fluoroscopy.",
	},
	IdxThalassemia: {
		Key: "thal", Name: "Thalassemia", Kind: KindChoice,
		Choices: []Choice{
			{Label: "Normal", Code: 3},
			{Label: "Fixed Defect", Code: 6},
			{Label: "Reversible Defect", Code: 7},
		},
		Help: "Select the type of Thalassemia, measured via a blood test:\n" +
			"- Normal: No Thalassemia detected.\n" +
			"- Fixed Defect: Fixed Thalassemia defect detected.\n" +
			"- Reversible Defect: Reversible Thalassemia defect detected.",
	},
}

// Fields returns the form fields in vector order.
func Fields() []Field {
	out := make([]Field, NumFeatures)
	copy(out, schema[:])
	return out
}

// Keys returns the field keys in vector order.
func Keys() []string {
	keys := make([]string, NumFeatures)
	for i, f := range schema {
		keys[i] = f.Key
	}
	return keys
}

// Lookup finds a field and its vector position by key.
func Lookup(key string) (Field, int, error) {
	for i, f := range schema {
		if f.Key == key {
			return f, i, nil
		}
	}
	return Field{}, -1, &UnknownFieldError{Key: key}
}
