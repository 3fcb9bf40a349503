package parser

import (
	"regexp"

	"github.com/wkchan/ifa-report-service/dto"
)

const defaultGoalAge = 65

var goalAgeRE = regexp.MustCompile(`(\d+)歲`)

// parseGoalSection reads structured "goal: amount" lines, taking the
// target age from any NN歲 in the label ("65歲退休 : 4000000"), and
// falls back to the legacy goal pattern chain when no line parsed.
func (p *Parser) parseGoalSection(section string, profile *dto.ClientProfile) {
	if section == "" {
		return
	}

	for _, line := range splitLines(section) {
		clean := stripListMarker(line)
		if clean == "" {
			continue
		}

		if label, value, ok := splitLabelValue(clean); ok {
			digits := digitsOnly(value)
			if label == "" || digits == "" {
				continue
			}
			byAge := defaultGoalAge
			if m := goalAgeRE.FindStringSubmatch(label); m != nil {
				byAge = int(ParseNumber(m[1]))
			}
			profile.Goals = append(profile.Goals, dto.Goal{
				Name:   label,
				Amount: ParseNumber(digits),
				ByAge:  byAge,
			})
		}
	}

	if len(profile.Goals) == 0 {
		for _, vp := range p.tables.GoalFallback {
			m := vp.Pattern.FindStringSubmatch(section)
			if len(m) < 2 {
				continue
			}
			profile.Goals = append(profile.Goals, dto.Goal{
				Name:   vp.Name,
				Amount: ParseNumber(m[1]),
				ByAge:  defaultGoalAge,
			})
		}
	}
}
