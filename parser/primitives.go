package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	listMarkerRE = regexp.MustCompile(`^[iIvVxX\d]+[\)\.]\s*`)
	colonRE      = regexp.MustCompile(`[：:]`)
	digitsRE     = regexp.MustCompile(`[^0-9]`)
	numberRE     = regexp.MustCompile(`[^0-9.\-]`)
)

// extractValue applies a pattern with a single capture group and returns
// the trimmed capture. A non-matching pattern is a normal outcome, not
// an error; the empty string signals "not found".
func extractValue(text string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractFirst returns the first non-empty capture across an ordered
// list of patterns.
func extractFirst(text string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if v := extractValue(text, re); v != "" {
			return v
		}
	}
	return ""
}

// ParseNumber strips every character except digits, dot and minus, then
// parses the remainder as a float. Empty or unparseable input yields 0;
// a declared zero and an absent value are indistinguishable downstream.
func ParseNumber(raw string) float64 {
	cleaned := numberRE.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// digitsOnly keeps only the digit characters of a value field, the way
// structured list lines are interpreted ("$30,000/月" -> "30000").
func digitsOnly(raw string) string {
	return digitsRE.ReplaceAllString(raw, "")
}

// stripListMarker removes a leading roman or arabic list marker such as
// "i)", "iii)" or "2.".
func stripListMarker(line string) string {
	return strings.TrimSpace(listMarkerRE.ReplaceAllString(line, ""))
}

// splitLabelValue splits a cleaned line on colons (half- or full-width)
// into a label and the value field before the next colon. ok is false
// when the line carries no colon at all.
func splitLabelValue(line string) (label, value string, ok bool) {
	parts := colonRE.Split(line, -1)
	if len(parts) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), parts[1], true
}

// KeywordRule maps any label containing Keyword (case-insensitive) onto
// a canonical category, unless the label also contains Exclude.
type KeywordRule struct {
	Keyword  string
	Exclude  string
	Category string
}

// classifyKeyword runs an ordered rule list over a token; the first
// matching rule wins. The empty string means no rule matched.
func classifyKeyword(token string, rules []KeywordRule) string {
	lower := strings.ToLower(token)
	for _, r := range rules {
		if !strings.Contains(lower, strings.ToLower(r.Keyword)) {
			continue
		}
		if r.Exclude != "" && strings.Contains(lower, strings.ToLower(r.Exclude)) {
			continue
		}
		return r.Category
	}
	return ""
}
