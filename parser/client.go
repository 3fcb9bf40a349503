package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wkchan/ifa-report-service/dto"
)

var (
	nameRE       = regexp.MustCompile(`姓名[：:]\s*(.+)`)
	nameEnRE     = regexp.MustCompile(`(?i)name[：:]\s*(.+)`)
	genderRE     = regexp.MustCompile(`姓別[：:]\s*(.+)`)
	genderAltRE  = regexp.MustCompile(`性別[：:]\s*(.+)`)
	genderEnRE   = regexp.MustCompile(`(?i)gender[：:]\s*(.+)`)
	ageRE        = regexp.MustCompile(`年齡[：:]\s*(\d+)`)
	ageEnRE      = regexp.MustCompile(`(?i)age[：:]\s*(\d+)`)
	phoneRE      = regexp.MustCompile(`電話[：:]\s*(\d+)`)
	phoneFullRE  = regexp.MustCompile(`聯絡電話[：:]\s*(\d+)`)
	phoneEnRE    = regexp.MustCompile(`(?i)phone[：:]\s*(\d+)`)
	occupationRE = regexp.MustCompile(`職業[：:]\s*(.+)`)
	occupEnRE    = regexp.MustCompile(`(?i)occupation[：:]\s*(.+)`)

	familyMarkerRE = regexp.MustCompile(`家庭背景[：:]?[ \t]*\n?`)
)

// parseClientInfo fills the demographic fields from the background
// section. Labeled extraction first; family background falls back to
// any colon-free free text.
func (p *Parser) parseClientInfo(section string, profile *dto.ClientProfile) {
	if section == "" {
		return
	}

	if name := extractFirst(section, nameRE, nameEnRE); name != "" {
		profile.Client.Name = firstLine(name)
	}

	profile.Client.Gender = normalizeGender(extractFirst(section, genderRE, genderAltRE, genderEnRE))

	if age := extractFirst(section, ageRE, ageEnRE); age != "" {
		if n, err := strconv.Atoi(age); err == nil && n >= 0 {
			profile.Client.Age = n
		}
	}

	if phone := extractFirst(section, phoneRE, phoneFullRE, phoneEnRE); phone != "" {
		profile.Client.Phone = phone
	}
	if occ := extractFirst(section, occupationRE, occupEnRE); occ != "" {
		profile.Client.Occupation = firstLine(occ)
	}

	profile.Client.FamilyBackground = extractFamilyBackground(section)
}

// firstLine cuts a labeled capture at the end of its line; the label
// patterns above capture greedily to keep full-width text intact.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func normalizeGender(raw string) string {
	switch raw {
	case "M", "男":
		return "男"
	case "F", "女":
		return "女"
	case "":
		return dto.NotProvided
	default:
		return raw
	}
}

// extractFamilyBackground takes the text following a 家庭背景 marker up
// to a blank line or the next labeled line. Without a marker, colon-free
// lines of the section are joined as a free-text description.
func extractFamilyBackground(section string) string {
	if loc := familyMarkerRE.FindStringIndex(section); loc != nil {
		rest := section[loc[1]:]
		var kept []string
		for i, line := range strings.Split(rest, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				break
			}
			if i > 0 && colonRE.MatchString(trimmed) {
				break
			}
			kept = append(kept, trimmed)
		}
		if out := strings.TrimSpace(strings.Join(kept, " ")); out != "" {
			return out
		}
	}

	var free []string
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || colonRE.MatchString(trimmed) {
			continue
		}
		free = append(free, trimmed)
	}
	if len(free) > 0 {
		return strings.Join(free, " ")
	}
	return dto.NotProvided
}
