package parser

import (
	"regexp"
	"strings"

	"github.com/wkchan/ifa-report-service/dto"
)

var (
	// ticker, free-text name, dash, share count
	stockExplicitRE = regexp.MustCompile(`(?i)([A-Z0-9.]+(?:\.HK|\.US)?)\s+(.+?)\s*[-–—]\s*(\d+)`)
	// ticker, dash, share count (no name)
	stockSimpleRE = regexp.MustCompile(`(?i)([A-Z0-9.]+(?:\.HK|\.US)?)\s*[-–—]\s*(\d+)`)
	// leading ticker with optional trailing label
	stockImplicitRE = regexp.MustCompile(`(?i)^([A-Z0-9.]+(?:\.HK|\.US)?)\s*(.*)`)

	hkCodeRE = regexp.MustCompile(`^\d{4}`)
	usCodeRE = regexp.MustCompile(`^[A-Z]+`)
)

// parseAssetSection fills the fixed category buckets from structured
// list lines and runs an independent holdings pass over the same lines.
// Bucket writes are last-write-wins; holdings keep discovery order.
func (p *Parser) parseAssetSection(section string, profile *dto.ClientProfile) {
	if section == "" {
		return
	}

	lines := splitLines(section)

	for _, line := range lines {
		clean := stripListMarker(line)
		if clean == "" {
			continue
		}
		label, value, ok := splitLabelValue(clean)
		if !ok {
			continue
		}
		digits := digitsOnly(value)
		if digits == "" {
			continue
		}
		amount := ParseNumber(digits)
		switch classifyKeyword(label, p.tables.AssetBuckets) {
		case bucketCash:
			profile.Assets.Cash = amount
		case bucketStock:
			profile.Assets.Stock = amount
		case bucketMPF:
			profile.Assets.MPF = amount
		case bucketFund:
			profile.Assets.Fund = amount
		case bucketOther:
			profile.Assets.Other = amount
		}
	}

	for _, line := range lines {
		clean := stripListMarker(line)
		if clean == "" {
			continue
		}
		// Category lines carry colons; holdings never do.
		if strings.ContainsAny(clean, ":：") {
			continue
		}
		if h, ok := p.matchHolding(clean); ok {
			profile.Assets.StockHoldings = append(profile.Assets.StockHoldings, h)
		}
	}

	// Legacy formats put totals in prose rather than list lines.
	for _, vp := range p.tables.AssetLegacy {
		switch {
		case vp.Name == bucketCash && profile.Assets.Cash == 0:
			if m := vp.Pattern.FindStringSubmatch(section); len(m) > 1 {
				profile.Assets.Cash = ParseNumber(m[1])
			}
		case vp.Name == bucketStock && profile.Assets.Stock == 0:
			if m := vp.Pattern.FindStringSubmatch(section); len(m) > 1 {
				profile.Assets.Stock = ParseNumber(m[1])
			}
		}
	}
}

// matchHolding tries the holding strategies in priority order; exactly
// one may fire per line.
func (p *Parser) matchHolding(line string) (dto.StockHolding, bool) {
	if m := stockExplicitRE.FindStringSubmatch(line); m != nil {
		symbol := strings.ToUpper(m[1])
		return dto.StockHolding{
			Symbol: symbol,
			Name:   strings.TrimSpace(m[2]),
			Shares: int(ParseNumber(m[3])),
			Market: marketOf(symbol),
		}, true
	}

	if m := stockSimpleRE.FindStringSubmatch(line); m != nil {
		symbol := strings.ToUpper(m[1])
		return dto.StockHolding{
			Symbol: symbol,
			Shares: int(ParseNumber(m[2])),
			Market: marketOf(symbol),
		}, true
	}

	if m := stockImplicitRE.FindStringSubmatch(line); m != nil {
		symbol := strings.ToUpper(m[1])
		name := strings.TrimSpace(m[2])

		isHK := hkCodeRE.MatchString(symbol) || strings.Contains(symbol, ".HK")
		isUS := usCodeRE.MatchString(symbol) || strings.Contains(symbol, ".US")

		if (isHK || isUS) && !p.ignoredSymbol(symbol) && !strings.Contains(name, ":") {
			market := "US"
			if isHK {
				market = "HK"
			}
			return dto.StockHolding{Symbol: symbol, Market: market, Name: name}, true
		}
	}

	for _, etf := range p.tables.ETFAliases {
		if strings.Contains(strings.ToUpper(line), strings.ToUpper(etf.Keyword)) {
			return dto.StockHolding{
				Symbol: etf.Symbol,
				Market: "HK",
				Name:   etf.Name,
			}, true
		}
	}

	return dto.StockHolding{}, false
}

// ignoredSymbol filters category words that would otherwise look like
// US tickers (CASH, TOTAL, ...).
func (p *Parser) ignoredSymbol(symbol string) bool {
	for _, kw := range p.tables.StockIgnore {
		if strings.Contains(symbol, kw) {
			return true
		}
	}
	return false
}

func marketOf(symbol string) string {
	if strings.Contains(symbol, ".US") {
		return "US"
	}
	return "HK"
}
