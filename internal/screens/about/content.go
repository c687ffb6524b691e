package about

// Markdown is the educational text shown on the about screen.
const Markdown = `# About Heart Disease

Heart disease, also known as cardiovascular disease (CVD), encompasses a broad
range of conditions that affect the heart and blood vessels. It is a leading
cause of mortality worldwide, with several types and stages. Some common types
of CVD include coronary artery disease (CAD), heart failure, and arrhythmias.

Understanding the risk factors and early detection of heart disease are
critical for prevention and timely intervention. This tool employs machine
learning to assess the probability of heart disease based on a set of clinical
and diagnostic parameters.

## Prediction Details

The prediction provided by this tool is based on a Random Forest model. A
Random Forest is a machine learning algorithm that combines the input data to
estimate the probability of heart disease.

The model categorizes the likelihood of heart disease into the following
stages based on the probability:

- **Stage 0: No Heart Disease**: This category represents individuals with a
  low probability of having heart disease, indicating a healthy heart.
- **Stage 1: Mild Heart Disease**: Individuals in this category have a higher
  probability of having heart disease, typically associated with mild symptoms
  or early stages of the condition.
- **Stage 2: Moderate Heart Disease**: This stage indicates a moderate
  likelihood of heart disease, often requiring medical attention and further
  evaluation.
- **Stage 3: Severe Heart Disease**: Individuals in this category have a high
  probability of severe heart disease, which may necessitate immediate medical
  intervention.
- **Stage 4: Critical Heart Disease**: This stage represents a critical
  likelihood of heart disease, indicating a severe condition that requires
  immediate medical attention and treatment.

## Disclaimer

> The results presented by this tool are based on the input data and should
> not be taken as a substitute for professional medical advice. If you're
> experiencing symptoms or have concerns about your health, please consult a
> healthcare provider for an accurate diagnosis.

## References

For comprehensive information about heart disease, please refer to the
following reputable sources:

- [American Heart Association](https://www.heart.org/)
- [Mayo Clinic](https://www.mayoclinic.org/)
- [MedlinePlus - NIH](https://medlineplus.gov/heartdiseases.html)
`
