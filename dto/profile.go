package dto

// NotProvided is the placeholder written into every string field the
// parser could not fill, so downstream rendering never branches on
// missing keys.
const NotProvided = "未提供"

// Insurance policy categories recognised by the parser.
const (
	PolicyLife     = "人壽"
	PolicyAccident = "意外"
	PolicyMedical  = "醫療"
	PolicyCritical = "危疾"
	PolicyAnnuity  = "年金"
	PolicySavings  = "儲蓄"
	PolicyFund     = "基金"
	PolicyOther    = "其他"
)

// Payment frequencies.
const (
	FreqYearly  = "年"
	FreqMonthly = "月"
)

// ClientInfo holds the demographic fields extracted from the background
// section. Gender is normalised to 男/女 when recognisable; otherwise the
// raw value (or NotProvided) passes through.
type ClientInfo struct {
	Name             string `json:"name"`
	Gender           string `json:"gender"`
	Age              int    `json:"age"`
	Phone            string `json:"phone"`
	Occupation       string `json:"occupation"`
	FamilyBackground string `json:"family_background"`
}

// CashFlowItem is one income or expense line. Amounts are monthly.
type CashFlowItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// StockHolding is a single position in the client's portfolio.
// Shares of 0 means the holding was declared without a quantity.
type StockHolding struct {
	Symbol string `json:"symbol"`
	Shares int    `json:"shares"`
	Market string `json:"market"`
	Name   string `json:"name"`
}

// CustomAsset is a user-added asset outside the five fixed buckets.
type CustomAsset struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Assets groups the fixed category buckets with individual holdings.
type Assets struct {
	Cash          float64        `json:"cash"`
	Stock         float64        `json:"stock"`
	MPF           float64        `json:"mpf"`
	Fund          float64        `json:"fund"`
	Other         float64        `json:"other"`
	StockHoldings []StockHolding `json:"stock_holdings"`
	CustomAssets  []CustomAsset  `json:"custom_assets"`
}

// InsurancePolicy is one extracted policy record. ID is generated at
// parse time so UI edits can target a record after category regrouping.
type InsurancePolicy struct {
	ID        string  `json:"id"`
	Provider  string  `json:"provider"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Premium   float64 `json:"premium"`
	Frequency string  `json:"frequency"`
	Coverage  float64 `json:"coverage"`
	Status    string  `json:"status"`
}

// Liability is one debt with its monthly repayment and outstanding total.
type Liability struct {
	Name    string  `json:"name"`
	Monthly float64 `json:"monthly"`
	Total   float64 `json:"total"`
}

// Goal is a financial target to reach by a given age.
type Goal struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	ByAge         int     `json:"by_age"`
	CurrentAmount float64 `json:"current_amount"`
}

// ClientProfile is the root output of the parsing pipeline. Every slice
// keeps discovery order; the parser never sorts.
type ClientProfile struct {
	Client      ClientInfo        `json:"client"`
	Income      []CashFlowItem    `json:"income"`
	Expenses    []CashFlowItem    `json:"expenses"`
	Assets      Assets            `json:"assets"`
	Insurance   []InsurancePolicy `json:"insurance"`
	Liabilities []Liability       `json:"liabilities"`
	Goals       []Goal            `json:"goals"`
}

// Clone returns a deep copy of the profile. Copied slices stay non-nil
// so the JSON shape is identical to the original's.
func (p *ClientProfile) Clone() *ClientProfile {
	out := *p
	out.Income = cloneCashFlow(p.Income)
	out.Expenses = cloneCashFlow(p.Expenses)
	out.Assets.StockHoldings = append(make([]StockHolding, 0, len(p.Assets.StockHoldings)), p.Assets.StockHoldings...)
	out.Assets.CustomAssets = append(make([]CustomAsset, 0, len(p.Assets.CustomAssets)), p.Assets.CustomAssets...)
	out.Insurance = append(make([]InsurancePolicy, 0, len(p.Insurance)), p.Insurance...)
	out.Liabilities = append(make([]Liability, 0, len(p.Liabilities)), p.Liabilities...)
	out.Goals = append(make([]Goal, 0, len(p.Goals)), p.Goals...)
	return &out
}

func cloneCashFlow(items []CashFlowItem) []CashFlowItem {
	return append(make([]CashFlowItem, 0, len(items)), items...)
}

// NewClientProfile returns a profile with every field at its documented
// default so the output is always fully populated.
func NewClientProfile() *ClientProfile {
	return &ClientProfile{
		Client: ClientInfo{
			Name:             NotProvided,
			Gender:           NotProvided,
			Age:              0,
			Phone:            NotProvided,
			Occupation:       NotProvided,
			FamilyBackground: NotProvided,
		},
		Income:      []CashFlowItem{},
		Expenses:    []CashFlowItem{},
		Assets:      Assets{StockHoldings: []StockHolding{}, CustomAssets: []CustomAsset{}},
		Insurance:   []InsurancePolicy{},
		Liabilities: []Liability{},
		Goals:       []Goal{},
	}
}
