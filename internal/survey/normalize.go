package survey

import (
	"regexp"
	"strconv"
	"strings"
)

// Field label matchers: anchored on the label token, colon optional, matched
// against lowercased text. Each field is independent, so answers can appear
// in any order and interleaved with unrelated text.
var (
	reAge    = regexp.MustCompile(`age:?\s*(\d+)`)
	reSmoker = regexp.MustCompile(`smoker:?\s*(yes|no|true|false|y|n)`)

	reDietLine     = regexp.MustCompile(`diet:?\s*([^\n\r]+)`)
	reExerciseLine = regexp.MustCompile(`exercise:?\s*([^\n\r]+)`)
	reSleepLine    = regexp.MustCompile(`sleep:?\s*([^\n\r]+)`)
	reStressLine   = regexp.MustCompile(`stress:?\s*([^\n\r]+)`)
	reAlcoholLine  = regexp.MustCompile(`alcohol:?\s*([^\n\r]+)`)
	reWeightLine   = regexp.MustCompile(`weight:?\s*([^\n\r]+)`)
	reHeightLine   = regexp.MustCompile(`height:?\s*([^\n\r]+)`)

	reSleepHours = regexp.MustCompile(`(\d+-\d+|\d+)\s*hours?`)
	reStressTok  = regexp.MustCompile(`(\d+|low|medium|high)`)

	reNoise = regexp.MustCompile(`[^a-zA-Z0-9\s/\-().,&]`)
)

// SanitizeValue cleans up common OCR garbage from a text value: every
// character outside letters/digits/whitespace/`/-().,&` is stripped, then
// the ends are trimmed.
func SanitizeValue(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(reNoise.ReplaceAllString(text, ""))
}

// ParseAndNormalize extracts the canonical answer set from raw survey text
// (OCR output or a plain text submission). A field whose label is not found
// is left unset.
func ParseAndNormalize(text string) AnswerSet {
	var answers AnswerSet
	normalized := strings.ToLower(text)

	// Age: first integer after the label
	if m := reAge.FindStringSubmatch(normalized); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			answers.Age = &v
		}
	}

	// Smoker: boolean-like token after the label
	if m := reSmoker.FindStringSubmatch(normalized); m != nil {
		v := m[1] == "yes" || m[1] == "true" || m[1] == "y"
		answers.Smoker = &v
	}

	// Exercise: rest of the line, sanitized
	if m := reExerciseLine.FindStringSubmatch(normalized); m != nil {
		answers.Exercise = SanitizeValue(m[1])
	}

	// Diet: rest of the line, sanitized, then canonicalized to a small vocabulary
	if m := reDietLine.FindStringSubmatch(normalized); m != nil {
		diet := SanitizeValue(m[1])
		if strings.Contains(diet, "sugar") {
			diet = "high sugar"
		} else if strings.Contains(diet, "balanced") {
			diet = "balanced"
		}
		answers.Diet = diet
	}

	// Sleep: keep the "N hours" / "N-M hours" token when present
	if m := reSleepLine.FindStringSubmatch(normalized); m != nil {
		if tok := reSleepHours.FindString(m[1]); tok != "" {
			answers.Sleep = tok
		} else {
			answers.Sleep = SanitizeValue(m[1])
		}
	}

	// Stress: keep a rating token (digit or level word) when present
	if m := reStressLine.FindStringSubmatch(normalized); m != nil {
		if tok := reStressTok.FindString(m[1]); tok != "" {
			answers.Stress = tok
		} else {
			answers.Stress = SanitizeValue(m[1])
		}
	}

	// Alcohol: sanitize and fix the known "veek" misread of "week"
	if m := reAlcoholLine.FindStringSubmatch(normalized); m != nil {
		answers.Alcohol = strings.Replace(SanitizeValue(m[1]), "veek", "week", 1)
	}

	// Weight, height: sanitized as-is, units stay embedded
	if m := reWeightLine.FindStringSubmatch(normalized); m != nil {
		answers.Weight = SanitizeValue(m[1])
	}
	if m := reHeightLine.FindStringSubmatch(normalized); m != nil {
		answers.Height = SanitizeValue(m[1])
	}

	return answers
}
