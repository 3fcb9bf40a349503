package parser

import "github.com/wkchan/ifa-report-service/dto"

// parseLiabilitySection extracts debts line by line: the ordered pattern
// chain is tried against each line and the first matching pattern wins,
// so "信用卡:50000, 月供2000" yields one record with both figures in the
// right fields. A whole-block scan recovers legacy prose if no line
// matched anything.
func (p *Parser) parseLiabilitySection(section string, profile *dto.ClientProfile) {
	if section == "" {
		return
	}

	for _, line := range splitLines(section) {
		clean := stripListMarker(line)
		if clean == "" {
			continue
		}
		if l, ok := p.matchLiability(clean); ok {
			profile.Liabilities = append(profile.Liabilities, l)
		}
	}

	if len(profile.Liabilities) == 0 {
		for _, lp := range p.tables.Liabilities {
			if l, ok := applyLiabilityPattern(section, lp); ok {
				profile.Liabilities = append(profile.Liabilities, l)
			}
		}
	}
}

func (p *Parser) matchLiability(line string) (dto.Liability, bool) {
	for _, lp := range p.tables.Liabilities {
		if l, ok := applyLiabilityPattern(line, lp); ok {
			return l, true
		}
	}
	return dto.Liability{}, false
}

func applyLiabilityPattern(text string, lp LiabilityPattern) (dto.Liability, bool) {
	m := lp.Pattern.FindStringSubmatch(text)
	if m == nil {
		return dto.Liability{}, false
	}

	group := func(i int) string {
		if i <= 0 || i >= len(m) {
			return ""
		}
		return m[i]
	}

	total := ParseNumber(group(lp.TotalGroup))
	monthly := ParseNumber(group(lp.MonthlyGroup))
	// A single-figure pattern declares the amount outstanding and owed
	// monthly alike.
	if group(lp.MonthlyGroup) == "" {
		monthly = total
	}
	if group(lp.TotalGroup) == "" {
		total = monthly
	}

	return dto.Liability{Name: lp.Name, Monthly: monthly, Total: total}, true
}
