package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wkchan/ifa-report-service/dto"
)

var (
	// Segment content that is nothing but punctuation, numbering or an
	// explicit none-marker represents an intentionally empty category.
	placeholderRE = regexp.MustCompile(`^[:：︰\s\-.iIvV()\d]+$`)
	noneMarkerRE  = regexp.MustCompile(`(?i)^[:：︰\s]*(?:n/a|nil|none|沒有)[:：︰\s]*$`)

	blankBlockRE    = regexp.MustCompile(`\n\s*\n`)
	numberedItemRE  = regexp.MustCompile(`(?m)^\s*\d+[\.．]`)
	numberedSplitRE = regexp.MustCompile(`(?m)(?:^|\n)\s*\d+[\.．]\s*`)

	csvSplitRE     = regexp.MustCompile(`,|，`)
	csvAttributeRE = regexp.MustCompile(`(?i)^(?:premium|保費|年供|月供|保額|coverage|sum insured|現金價值|cash value|原值|原本價值)$`)
	csvNumberRE    = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)
	csvMonthlyRE   = regexp.MustCompile(`(?i)/(?:m|mth|month|mo|月)|per\s*month`)

	// Attribute phrases stripped off the name line before provider
	// detection, in both colon- and comma-delimited forms.
	nameCoverageStripRE = regexp.MustCompile(`(?i)(?:保額|coverage|sum insured|現金價值|cash value|原值)[^：:︰\d]*[：:︰,]\s*\$?[\d,]+(?:\s*[A-Z]{3})?`)
	namePremiumStripRE  = regexp.MustCompile(`(?i)(?:保費|premium|年供|月供|月派)[^：:︰\d]*[：:︰,]\s*\$?[\d,.]+(?:/[年月])?(?:\s*[A-Z]{3})?`)
	nameEdgeTrimRE      = regexp.MustCompile(`^[:：︰\s,\-]+|[:：︰\s,\-]+$`)

	premiumRE       = regexp.MustCompile(`(?i)(?:premium|保費|年供|月供)[^：:︰\d]*[：:︰]?\s*\$?([\d,.]+)`)
	simplePremiumRE = regexp.MustCompile(`(?im)^\$?([\d,]+)\s*/\s*(?:year|yr|年|month|mth|月)`)
	perMonthRE      = regexp.MustCompile(`(?i)per\s*month`)
	monthlyHintRE   = regexp.MustCompile(`(?i)month|mth|月`)
	coverageRE      = regexp.MustCompile(`(?i)(?:coverage|保額|sum insured|現金價值|cash value|原值|原本價值)[^：:︰\d]*[：:︰]?\s*\$?([\d,]+)`)
	annuityPayoutRE = regexp.MustCompile(`(?i)(?:月派|派息|monthly payout)[^：:︰\d]*[：:︰]?\s*\$?([\d,]+)`)
)

type categoryHeader struct {
	key   string
	index int
	end   int
}

// parseInsuranceSection segments the insurance section by category
// header ("i)人壽", "iii)醫療", ...), then resolves each segment into
// zero or more policy records.
func (p *Parser) parseInsuranceSection(section string, profile *dto.ClientProfile) {
	if section == "" {
		return
	}

	headers := p.findCategoryHeaders(section)

	if len(headers) == 0 {
		// No recognised categories: treat blank-line-delimited blocks as
		// uncategorised policies.
		for _, block := range blankBlockRE.Split(section, -1) {
			if policy, ok := p.parsePolicyBlock(blockLines(block), dto.PolicyOther); ok {
				profile.Insurance = append(profile.Insurance, policy)
			}
		}
		return
	}

	for i, h := range headers {
		end := len(section)
		if i+1 < len(headers) {
			end = headers[i+1].index
		}
		segment := strings.TrimSpace(section[h.end:end])
		if segment == "" {
			continue
		}
		if placeholderRE.MatchString(segment) || noneMarkerRE.MatchString(segment) {
			continue
		}

		if numberedItemRE.MatchString(segment) {
			for _, block := range numberedSplitRE.Split(segment, -1) {
				lines := blockLines(block)
				if len(lines) == 0 {
					continue
				}
				if policy, ok := p.parsePolicyBlock(lines, h.key); ok {
					profile.Insurance = append(profile.Insurance, policy)
				}
			}
			continue
		}

		if policy, ok := p.parsePolicyBlock(blockLines(segment), h.key); ok {
			profile.Insurance = append(profile.Insurance, policy)
		}
	}
}

// findCategoryHeaders locates the first occurrence of each category
// marker (list marker + category word) and orders them by position.
func (p *Parser) findCategoryHeaders(section string) []categoryHeader {
	var headers []categoryHeader
	for _, key := range p.tables.InsuranceCategories {
		re := regexp.MustCompile(`[iIvVxX\d]+[\)\.]\s*` + regexp.QuoteMeta(key))
		if loc := re.FindStringIndex(section); loc != nil {
			headers = append(headers, categoryHeader{key: key, index: loc[0], end: loc[1]})
		}
	}
	sort.Slice(headers, func(i, j int) bool { return headers[i].index < headers[j].index })
	return headers
}

func blockLines(block string) []string {
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// parsePolicyBlock resolves one policy block. CSV-row interpretation is
// attempted first and, when accepted, short-circuits every other
// heuristic; otherwise the label/value interpretation isolates a name,
// splits off a known provider, and scans the whole block for premium
// and coverage figures.
func (p *Parser) parsePolicyBlock(lines []string, category string) (dto.InsurancePolicy, bool) {
	if len(lines) == 0 {
		return dto.InsurancePolicy{}, false
	}

	if policy, ok := p.parseCSVRow(lines[0], category); ok {
		return policy, true
	}

	nameLine := stripListMarker(lines[0])
	nameLine = nameCoverageStripRE.ReplaceAllString(nameLine, "")
	nameLine = namePremiumStripRE.ReplaceAllString(nameLine, "")
	nameLine = nameEdgeTrimRE.ReplaceAllString(strings.TrimSpace(nameLine), "")

	if nameLine == "" && len(lines) == 1 {
		return dto.InsurancePolicy{}, false
	}

	provider, planName := p.splitProvider(nameLine)
	planName = nameEdgeTrimRE.ReplaceAllString(planName, "")

	fullBlock := strings.Join(lines, "\n")

	premium := 0.0
	frequency := dto.FreqYearly
	if m := premiumRE.FindStringSubmatch(fullBlock); m != nil {
		premium = ParseNumber(m[1])
		if strings.Contains(fullBlock, "月供") || perMonthRE.MatchString(fullBlock) {
			frequency = dto.FreqMonthly
		}
	} else if m := simplePremiumRE.FindStringSubmatch(fullBlock); m != nil {
		premium = ParseNumber(m[1])
		if monthlyHintRE.MatchString(fullBlock) {
			frequency = dto.FreqMonthly
		}
	}

	coverage := 0.0
	if m := coverageRE.FindStringSubmatch(fullBlock); m != nil {
		coverage = ParseNumber(m[1])
	}

	// Annuities often state only the monthly payout.
	if category == dto.PolicyAnnuity && premium == 0 {
		if m := annuityPayoutRE.FindStringSubmatch(fullBlock); m != nil {
			premium = ParseNumber(m[1])
			frequency = dto.FreqMonthly
		}
	}

	// Noise block: nothing identifiable survived.
	if planName == "" && provider == "" && premium == 0 && coverage == 0 {
		return dto.InsurancePolicy{}, false
	}

	return dto.InsurancePolicy{
		ID:        p.newID(),
		Provider:  provider,
		Name:      planName,
		Type:      category,
		Premium:   premium,
		Frequency: frequency,
		Coverage:  coverage,
		Status:    "生效中",
	}, true
}

// parseCSVRow interprets "provider, plan, premium, coverage" rows. The
// interpretation is rejected when the first line carries a colon (it is
// then a labeled line) or when the would-be plan column is actually an
// attribute keyword, which guards against thousands-separator commas.
func (p *Parser) parseCSVRow(first, category string) (dto.InsurancePolicy, bool) {
	if !strings.ContainsAny(first, ",，") || strings.ContainsAny(first, ":：︰") {
		return dto.InsurancePolicy{}, false
	}

	parts := csvSplitRE.Split(first, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return dto.InsurancePolicy{}, false
	}
	if csvAttributeRE.MatchString(parts[1]) {
		return dto.InsurancePolicy{}, false
	}

	premium := 0.0
	frequency := dto.FreqYearly
	if len(parts) > 2 && parts[2] != "" {
		if csvMonthlyRE.MatchString(parts[2]) {
			frequency = dto.FreqMonthly
		}
		if num := csvNumberRE.FindString(parts[2]); num != "" {
			premium = ParseNumber(num)
		}
	}

	coverage := 0.0
	if len(parts) > 3 && parts[3] != "" {
		if num := csvNumberRE.FindString(parts[3]); num != "" {
			coverage = ParseNumber(num)
		}
	}

	return dto.InsurancePolicy{
		ID:        p.newID(),
		Provider:  strings.ToUpper(parts[0]),
		Name:      parts[1],
		Type:      category,
		Premium:   premium,
		Frequency: frequency,
		Coverage:  coverage,
		Status:    "生效中",
	}, true
}

// splitProvider detects a known insurer by case-insensitive substring
// match and peels it off the front of the name fragment.
func (p *Parser) splitProvider(nameLine string) (provider, planName string) {
	planName = nameLine
	lower := strings.ToLower(nameLine)
	for _, company := range p.tables.InsuranceProviders {
		if !strings.Contains(lower, strings.ToLower(company)) {
			continue
		}
		provider = strings.ToUpper(company)
		prefixRE := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(company) + `\s*[-: ]?\s*`)
		planName = prefixRE.ReplaceAllString(nameLine, "")
		return provider, planName
	}
	return "", planName
}
