package survey

// ExpectedFields is the closed vocabulary of survey fields, in canonical order.
var ExpectedFields = []string{
	"age", "smoker", "exercise", "diet",
	"sleep", "stress", "alcohol", "weight",
	"height",
}

// AnswerSet is the canonical normalized survey data. A nil pointer or empty
// string means the field is unknown, never an implicit false/zero.
type AnswerSet struct {
	Age      *int   `json:"age,omitempty"`
	Smoker   *bool  `json:"smoker,omitempty"`
	Exercise string `json:"exercise,omitempty"`
	Diet     string `json:"diet,omitempty"`
	Sleep    string `json:"sleep,omitempty"`
	Stress   string `json:"stress,omitempty"`
	Alcohol  string `json:"alcohol,omitempty"`
	Weight   string `json:"weight,omitempty"`
	Height   string `json:"height,omitempty"`
}

// Has reports whether a field is present with a non-empty value.
func (a AnswerSet) Has(field string) bool {
	switch field {
	case "age":
		return a.Age != nil
	case "smoker":
		return a.Smoker != nil
	case "exercise":
		return a.Exercise != ""
	case "diet":
		return a.Diet != ""
	case "sleep":
		return a.Sleep != ""
	case "stress":
		return a.Stress != ""
	case "alcohol":
		return a.Alcohol != ""
	case "weight":
		return a.Weight != ""
	case "height":
		return a.Height != ""
	}
	return false
}

// MissingFields returns the expected fields absent from the answer set.
// Together with the present fields it always partitions ExpectedFields.
func (a AnswerSet) MissingFields() []string {
	missing := make([]string, 0, len(ExpectedFields))
	for _, f := range ExpectedFields {
		if !a.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}
