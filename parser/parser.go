// Package parser converts free-form Chinese/English client financial
// narratives into structured profiles. It is a best-effort heuristic
// engine: every failure mode degrades to a default value and no input,
// however malformed, produces an error.
package parser

import (
	"github.com/google/uuid"

	"github.com/wkchan/ifa-report-service/dto"
)

// Parser is a reusable, stateless parsing engine. The zero value is not
// usable; construct with New.
type Parser struct {
	tables Tables
	newID  func() string
}

// Option configures a Parser.
type Option func(*Parser)

// WithIDGenerator replaces the insurance record ID source, letting
// tests supply a deterministic sequence.
func WithIDGenerator(gen func() string) Option {
	return func(p *Parser) { p.newID = gen }
}

// WithTables replaces the keyword and pattern tables.
func WithTables(t Tables) Option {
	return func(p *Parser) { p.tables = t }
}

// New returns a Parser with the default tables and uuid-based record
// IDs.
func New(opts ...Option) *Parser {
	p := &Parser{
		tables: DefaultTables(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewRecordID draws one identifier from the parser's generator, so
// records added after parsing share the ID scheme of parsed ones.
func (p *Parser) NewRecordID() string {
	return p.newID()
}

// Parse converts one narrative into a fully-populated profile. All
// seven section parsers always run; a section with no extractable data
// leaves its part of the profile at the documented default.
func (p *Parser) Parse(raw string) *dto.ClientProfile {
	profile := dto.NewClientProfile()
	sections := SplitSections(raw)

	p.parseClientInfo(sections.Background, profile)
	p.parseIncomeSection(sections.Income, profile)
	p.parseExpenseSection(sections.Expense, profile)
	p.parseAssetSection(sections.Assets, profile)
	p.parseLiabilitySection(sections.Liabilities, profile)
	p.parseInsuranceSection(sections.Insurance, profile)
	p.parseGoalSection(sections.Goals, profile)

	return profile
}
