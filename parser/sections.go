package parser

import (
	"regexp"
	"sort"
	"strings"
)

// Sections holds the raw text of each logical region of the input. A
// section the segmenter could not locate is simply the empty string.
type Sections struct {
	Background  string
	Income      string
	Expense     string
	Assets      string
	Liabilities string
	Insurance   string
	Goals       string
}

// structuredAnchorRE probes for the standardized heading grammar: any
// line opening with a top-level letter and a half- or full-width dot.
var structuredAnchorRE = regexp.MustCompile(`(?m)^[A-C][\.．]`)

// Structured grammar patterns. Capture runs non-greedily up to the next
// top-level letter (or numbered subsection) or the end of the text.
var (
	sectionARE = regexp.MustCompile(`(?s)A[\.．]\s*(?:基本資料|個人資料)(.*?)(?:B[\.．]|$)`)
	sectionBRE = regexp.MustCompile(`(?s)B[\.．]\s*財務資料(.*?)(?:C[\.．]|$)`)
	sectionCRE = regexp.MustCompile(`(?s)C[\.．]\s*財務目標(.*)$`)

	subIncomeRE      = regexp.MustCompile(`(?s)1[\.．]\s*(?:每月)?(?:收入|入息)(.*?)(?:2[\.．]|$)`)
	subExpenseRE     = regexp.MustCompile(`(?s)2[\.．]\s*(?:每月)?(?:支出|開支)(.*?)(?:3[\.．]|$)`)
	subLiabilitiesRE = regexp.MustCompile(`(?s)3[\.．]\s*(?:負債|欠債)(.*?)(?:4[\.．]|$)`)
	subAssetsRE      = regexp.MustCompile(`(?s)4[\.．]\s*資產(.*?)(?:5[\.．]|$)`)
	subInsuranceRE   = regexp.MustCompile(`(?s)5[\.．]\s*(?:現有保險資料|保險組合)(.*)$`)
)

// Loose keyword headers, more specific phrasing first. Each is anchored
// to start-of-line or start-of-text by the boundary scan.
type sectionHeader struct {
	key      string
	patterns []*regexp.Regexp
}

var looseHeaders = []sectionHeader{
	{"income", compileHeaders(`每月收入[：:]?`, `月入[：:]?`, `收入[：:]?`, `(?i)income[：:]?`)},
	{"expense", compileHeaders(`每月支出[：:]?`, `月支[：:]?`, `支出[：:]?`, `(?i)expenses?[：:]?`)},
	{"assets", compileHeaders(`資產[：:]?`, `(?i)assets?[：:]?`)},
	{"liabilities", compileHeaders(`負債[：:]?`, `(?i)liabilit(?:y|ies)[：:]?`, `欠債[：:]?`)},
	{"insurance", compileHeaders(`現有保險資料[：:]?`, `保險組合[：:]?`, `保險[：:]?`, `(?i)insurance[：:]?`)},
	{"goals", compileHeaders(`財務目標[：:]?`, `目標[：:]?`, `(?i)goals?[：:]?`)},
	{"background", compileHeaders(`基本資料[：:]?`, `個人資料[：:]?`, `家庭背景[：:]?`, `財務資料[：:]?`, `背景[：:]?`)},
}

func compileHeaders(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(`(?:^|\n)(`+p+`)`))
	}
	return res
}

// SplitSections divides the raw input into named sections. The strict
// A./B./C. grammar is tried first; anything else goes through the loose
// keyword boundary scan.
func SplitSections(text string) Sections {
	if structuredAnchorRE.MatchString(text) {
		return splitStructured(text)
	}
	return splitLoose(text)
}

func splitStructured(text string) Sections {
	var s Sections
	s.Background = extractValueRaw(text, sectionARE)
	s.Goals = extractValueRaw(text, sectionCRE)

	sectionB := extractValueRaw(text, sectionBRE)
	s.Income = extractValueRaw(sectionB, subIncomeRE)
	s.Expense = extractValueRaw(sectionB, subExpenseRE)
	s.Liabilities = extractValueRaw(sectionB, subLiabilitiesRE)
	s.Assets = extractValueRaw(sectionB, subAssetsRE)
	s.Insurance = extractValueRaw(sectionB, subInsuranceRE)
	return s
}

// extractValueRaw is extractValue without trimming; structured sections
// keep their leading newlines so line-based parsers see them verbatim.
func extractValueRaw(text string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

type boundary struct {
	key    string
	index  int
	length int
}

func splitLoose(text string) Sections {
	var boundaries []boundary
	for _, h := range looseHeaders {
		for _, re := range h.patterns {
			loc := re.FindStringSubmatchIndex(text)
			if loc == nil {
				continue
			}
			// loc[2]:loc[3] is the header capture, past any leading newline.
			boundaries = append(boundaries, boundary{
				key:    h.key,
				index:  loc[2],
				length: loc[3] - loc[2],
			})
		}
	}

	sort.SliceStable(boundaries, func(i, j int) bool {
		return boundaries[i].index < boundaries[j].index
	})

	// Keep only the first occurrence of each section key.
	seen := make(map[string]bool)
	unique := boundaries[:0]
	for _, b := range boundaries {
		if seen[b.key] {
			continue
		}
		seen[b.key] = true
		unique = append(unique, b)
	}

	var s Sections
	if len(unique) == 0 {
		s.Background = text
		return s
	}

	// Unclaimed text ahead of the first header still carries the client
	// basics in legacy notes; treat it as background unless an explicit
	// background header claims the key later.
	if lead := strings.TrimSpace(text[:unique[0].index]); lead != "" && !seen["background"] {
		s.Background = lead
	}

	for i, b := range unique {
		start := b.index + b.length
		end := len(text)
		if i+1 < len(unique) {
			end = unique[i+1].index
		}
		content := strings.TrimSpace(text[start:end])
		switch b.key {
		case "background":
			s.Background = content
		case "income":
			s.Income = content
		case "expense":
			s.Expense = content
		case "assets":
			s.Assets = content
		case "liabilities":
			s.Liabilities = content
		case "insurance":
			s.Insurance = content
		case "goals":
			s.Goals = content
		}
	}
	return s
}
