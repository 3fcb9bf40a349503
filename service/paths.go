package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wkchan/ifa-report-service/dto"
	"github.com/wkchan/ifa-report-service/parser"
)

// applyField resolves a dot-separated data path against the profile and
// writes the value, coercing numeric leaves through the same number
// normalizer the parser uses and clamping them to non-negative, the way
// added items are. The path grammar mirrors the report
// view's data bindings: "client.name", "assets.cash",
// "income.0.amount", "assets.stock_holdings.1.shares", ...
func applyField(p *dto.ClientProfile, path, value string) error {
	segments := strings.Split(path, ".")
	badPath := fmt.Errorf("%w: %q", dto.ErrUnknownPath, path)

	switch segments[0] {
	case "client":
		if len(segments) != 2 {
			return badPath
		}
		return setClientField(&p.Client, segments[1], value, badPath)

	case "income":
		return setCashFlowField(p.Income, segments, value, badPath)

	case "expenses":
		return setCashFlowField(p.Expenses, segments, value, badPath)

	case "assets":
		return setAssetField(&p.Assets, segments, value, badPath)

	case "insurance":
		idx, field, err := indexedField(segments, len(p.Insurance), badPath)
		if err != nil {
			return err
		}
		return setInsuranceField(&p.Insurance[idx], field, value, badPath)

	case "liabilities":
		idx, field, err := indexedField(segments, len(p.Liabilities), badPath)
		if err != nil {
			return err
		}
		l := &p.Liabilities[idx]
		switch field {
		case "name":
			l.Name = value
		case "monthly":
			l.Monthly = nonNegative(parser.ParseNumber(value))
		case "total":
			l.Total = nonNegative(parser.ParseNumber(value))
		default:
			return badPath
		}
		return nil

	case "goals":
		idx, field, err := indexedField(segments, len(p.Goals), badPath)
		if err != nil {
			return err
		}
		g := &p.Goals[idx]
		switch field {
		case "name":
			g.Name = value
		case "amount":
			g.Amount = nonNegative(parser.ParseNumber(value))
		case "by_age":
			g.ByAge = int(nonNegative(parser.ParseNumber(value)))
		case "current_amount":
			g.CurrentAmount = nonNegative(parser.ParseNumber(value))
		default:
			return badPath
		}
		return nil
	}

	return badPath
}

func setClientField(c *dto.ClientInfo, field, value string, badPath error) error {
	switch field {
	case "name":
		c.Name = value
	case "gender":
		c.Gender = value
	case "age":
		c.Age = int(nonNegative(parser.ParseNumber(value)))
	case "phone":
		c.Phone = value
	case "occupation":
		c.Occupation = value
	case "family_background":
		c.FamilyBackground = value
	default:
		return badPath
	}
	return nil
}

func setCashFlowField(items []dto.CashFlowItem, segments []string, value string, badPath error) error {
	idx, field, err := indexedField(segments, len(items), badPath)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		items[idx].Name = value
	case "amount":
		items[idx].Amount = nonNegative(parser.ParseNumber(value))
	default:
		return badPath
	}
	return nil
}

func setAssetField(a *dto.Assets, segments []string, value string, badPath error) error {
	if len(segments) == 2 {
		switch segments[1] {
		case "cash":
			a.Cash = nonNegative(parser.ParseNumber(value))
		case "stock":
			a.Stock = nonNegative(parser.ParseNumber(value))
		case "mpf":
			a.MPF = nonNegative(parser.ParseNumber(value))
		case "fund":
			a.Fund = nonNegative(parser.ParseNumber(value))
		case "other":
			a.Other = nonNegative(parser.ParseNumber(value))
		default:
			return badPath
		}
		return nil
	}

	if len(segments) == 4 && segments[1] == "stock_holdings" {
		idx, field, err := indexedField(segments[1:], len(a.StockHoldings), badPath)
		if err != nil {
			return err
		}
		h := &a.StockHoldings[idx]
		switch field {
		case "symbol":
			h.Symbol = strings.ToUpper(value)
		case "shares":
			h.Shares = int(nonNegative(parser.ParseNumber(value)))
		case "market":
			h.Market = value
		case "name":
			h.Name = value
		default:
			return badPath
		}
		return nil
	}

	if len(segments) == 4 && segments[1] == "custom_assets" {
		idx, field, err := indexedField(segments[1:], len(a.CustomAssets), badPath)
		if err != nil {
			return err
		}
		switch field {
		case "name":
			a.CustomAssets[idx].Name = value
		case "amount":
			a.CustomAssets[idx].Amount = nonNegative(parser.ParseNumber(value))
		default:
			return badPath
		}
		return nil
	}

	return badPath
}

func setInsuranceField(policy *dto.InsurancePolicy, field, value string, badPath error) error {
	switch field {
	case "provider":
		policy.Provider = value
	case "name":
		policy.Name = value
	case "type":
		policy.Type = value
	case "premium":
		policy.Premium = nonNegative(parser.ParseNumber(value))
	case "frequency":
		policy.Frequency = value
	case "coverage":
		policy.Coverage = nonNegative(parser.ParseNumber(value))
	case "status":
		policy.Status = value
	default:
		return badPath
	}
	return nil
}

// indexedField reads "<section>.<index>.<field>" segment triples and
// bounds-checks the index.
func indexedField(segments []string, length int, badPath error) (int, string, error) {
	if len(segments) != 3 {
		return 0, "", badPath
	}
	idx, err := strconv.Atoi(segments[1])
	if err != nil || idx < 0 || idx >= length {
		return 0, "", badPath
	}
	return idx, segments[2], nil
}
