package service

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/wkchan/ifa-report-service/dto"
	"github.com/wkchan/ifa-report-service/parser"
)

// ProfileService orchestrates parsing, session ownership and in-place
// report editing.
type ProfileService struct {
	parser *parser.Parser
	store  *SessionStore
	pdf    PDFProcessor
}

func NewProfileService(p *parser.Parser, store *SessionStore, pdf PDFProcessor) *ProfileService {
	return &ProfileService{
		parser: p,
		store:  store,
		pdf:    pdf,
	}
}

// ParseText runs the narrative parser and opens a session around the
// result. The empty-input guard lives in the request DTO; by the time
// text reaches the parser any string is acceptable.
func (s *ProfileService) ParseText(text string) *dto.ReportResponse {
	profile := s.parser.Parse(text)
	session := s.store.Create(profile)

	log.Printf("Parsed narrative into session %s (%d income, %d expenses, %d policies)",
		session.ID, len(profile.Income), len(profile.Expenses), len(profile.Insurance))

	return s.report(session)
}

// ParseDocument extracts text from an uploaded notes file and parses
// it. PDFs go through the text extractor; anything else is read as
// plain UTF-8 text.
func (s *ProfileService) ParseDocument(filename string, data []byte, password string) (*dto.ReportResponse, error) {
	var text string
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		extracted, err := s.pdf.ExtractText(data, password)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", filename, err)
		}
		text = extracted
	} else {
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return nil, dto.ErrEmptyInput
	}
	return s.ParseText(text), nil
}

// GetReport returns the current state of a session's report.
func (s *ProfileService) GetReport(id string) (*dto.ReportResponse, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.report(session), nil
}

// UpdateField writes one value at a dot-separated profile path such as
// "client.name", "assets.cash" or "income.0.amount".
func (s *ProfileService) UpdateField(id, path, value string) (*dto.ReportResponse, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.Edit(func(p *dto.ClientProfile) error {
		return applyField(p, path, value)
	}); err != nil {
		return nil, err
	}
	return s.report(session), nil
}

// AddItem appends a new record to one of the profile's list sections,
// defaulting unset numeric fields to 0 and string fields to placeholder
// labels.
func (s *ProfileService) AddItem(id string, req *dto.AddItemRequest) (*dto.ReportResponse, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.Edit(func(p *dto.ClientProfile) error {
		return addItem(s.parser, p, req)
	}); err != nil {
		return nil, err
	}
	return s.report(session), nil
}

func addItem(pr *parser.Parser, p *dto.ClientProfile, req *dto.AddItemRequest) error {
	switch req.Kind {
	case "income":
		p.Income = append(p.Income, dto.CashFlowItem{
			Name:   orPlaceholder(req.Name),
			Amount: nonNegative(req.Amount),
		})
	case "expense":
		p.Expenses = append(p.Expenses, dto.CashFlowItem{
			Name:   orPlaceholder(req.Name),
			Amount: nonNegative(req.Amount),
		})
	case "stock":
		market := req.Market
		if market == "" {
			market = "HK"
		}
		p.Assets.StockHoldings = append(p.Assets.StockHoldings, dto.StockHolding{
			Symbol: strings.ToUpper(req.Symbol),
			Shares: int(nonNegative(float64(req.Shares))),
			Market: market,
			Name:   req.Name,
		})
	case "custom_asset":
		p.Assets.CustomAssets = append(p.Assets.CustomAssets, dto.CustomAsset{
			Name:   orPlaceholder(req.Name),
			Amount: nonNegative(req.Amount),
		})
	case "liability":
		p.Liabilities = append(p.Liabilities, dto.Liability{
			Name:    orPlaceholder(req.Name),
			Monthly: nonNegative(req.Monthly),
			Total:   nonNegative(req.Total),
		})
	case "insurance":
		policyType := req.Type
		if policyType == "" {
			policyType = dto.PolicyOther
		}
		p.Insurance = append(p.Insurance, dto.InsurancePolicy{
			ID:        pr.NewRecordID(),
			Provider:  req.Provider,
			Name:      orPlaceholder(req.Name),
			Type:      policyType,
			Premium:   nonNegative(req.Premium),
			Frequency: dto.FreqYearly,
			Coverage:  nonNegative(req.Coverage),
			Status:    "生效中",
		})
	case "goal":
		byAge := req.TargetAge
		if byAge == 0 {
			byAge = 65
		}
		p.Goals = append(p.Goals, dto.Goal{
			Name:   orPlaceholder(req.Name),
			Amount: nonNegative(req.Amount),
			ByAge:  byAge,
		})
	default:
		return fmt.Errorf("%w: %q", dto.ErrUnknownKind, req.Kind)
	}
	return nil
}

// Summarize derives the report's aggregate figures from a profile.
func Summarize(p *dto.ClientProfile) dto.ReportSummary {
	var sum dto.ReportSummary

	for _, item := range p.Income {
		sum.TotalIncome += item.Amount
	}
	for _, item := range p.Expenses {
		sum.TotalExpense += item.Amount
	}
	sum.MonthlySurplus = sum.TotalIncome - sum.TotalExpense
	if sum.TotalIncome > 0 {
		sum.SavingsRate = sum.MonthlySurplus / sum.TotalIncome * 100
	}

	sum.TotalAssets = p.Assets.Cash + p.Assets.Stock + p.Assets.MPF + p.Assets.Fund + p.Assets.Other
	for _, a := range p.Assets.CustomAssets {
		sum.TotalAssets += a.Amount
	}
	for _, l := range p.Liabilities {
		sum.TotalLiabilities += l.Total
	}
	sum.NetWorth = sum.TotalAssets - sum.TotalLiabilities

	for _, policy := range p.Insurance {
		if policy.Frequency == dto.FreqMonthly {
			sum.MonthlyPremium += policy.Premium
		} else {
			sum.AnnualPremium += policy.Premium
		}
		sum.TotalCoverage += policy.Coverage
	}
	return sum
}

// report snapshots the session under its lock. The response carries a
// deep copy of the profile, so JSON encoding after the handler returns
// cannot race a concurrent edit.
func (s *ProfileService) report(session *Session) *dto.ReportResponse {
	var resp *dto.ReportResponse
	session.View(func(p *dto.ClientProfile, updatedAt time.Time) {
		resp = &dto.ReportResponse{
			SessionID: session.ID,
			Profile:   p.Clone(),
			Summary:   Summarize(p),
			ParsedAt:  updatedAt.Format(time.RFC3339),
		}
	})
	return resp
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return dto.NotProvided
	}
	return s
}

func nonNegative(n float64) float64 {
	if n < 0 {
		return 0
	}
	return n
}
