package parser

import (
	"strings"

	"github.com/wkchan/ifa-report-service/dto"
)

// parseIncomeSection applies the two-tier algorithm to the income
// section: structured "label: value" list lines first, then the ordered
// fallback pattern chain only when no line produced a record.
func (p *Parser) parseIncomeSection(section string, profile *dto.ClientProfile) {
	if section == "" {
		return
	}

	for _, line := range splitLines(section) {
		clean := stripListMarker(line)
		if clean == "" {
			continue
		}
		label, value, ok := splitLabelValue(clean)
		if !ok {
			continue
		}
		digits := digitsOnly(value)
		if label == "" || digits == "" {
			continue
		}
		name := label
		if canonical := classifyKeyword(label, p.tables.IncomeNames); canonical != "" {
			name = canonical
		}
		profile.Income = append(profile.Income, dto.CashFlowItem{
			Name:   name,
			Amount: ParseNumber(digits),
		})
	}

	if len(profile.Income) == 0 {
		profile.Income = append(profile.Income, scanFallback(section, p.tables.IncomeFallback)...)
	}
}

// parseExpenseSection mirrors the income parser without name
// canonicalization; expense labels are kept verbatim.
func (p *Parser) parseExpenseSection(section string, profile *dto.ClientProfile) {
	if section == "" {
		return
	}

	for _, line := range splitLines(section) {
		clean := stripListMarker(line)
		if clean == "" {
			continue
		}
		label, value, ok := splitLabelValue(clean)
		if !ok {
			continue
		}
		digits := digitsOnly(value)
		if label == "" || digits == "" {
			continue
		}
		profile.Expenses = append(profile.Expenses, dto.CashFlowItem{
			Name:   label,
			Amount: ParseNumber(digits),
		})
	}

	if len(profile.Expenses) == 0 {
		profile.Expenses = append(profile.Expenses, scanFallback(section, p.tables.ExpenseFallback)...)
	}
}

// scanFallback runs an ordered pattern chain over the whole section
// block; each pattern contributes at most one record.
func scanFallback(section string, patterns []ValuePattern) []dto.CashFlowItem {
	var items []dto.CashFlowItem
	for _, vp := range patterns {
		m := vp.Pattern.FindStringSubmatch(section)
		if len(m) < 2 {
			continue
		}
		items = append(items, dto.CashFlowItem{Name: vp.Name, Amount: ParseNumber(m[1])})
	}
	return items
}

func splitLines(section string) []string {
	return strings.Split(strings.ReplaceAll(section, "\r\n", "\n"), "\n")
}
