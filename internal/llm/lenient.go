package llm

import "regexp"

var reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// StripTrailingCommas removes commas left dangling before a closing brace or
// bracket, a malformation some models emit that strict JSON parsing rejects.
func StripTrailingCommas(raw []byte) []byte {
	return reTrailingComma.ReplaceAll(raw, []byte("$1"))
}
