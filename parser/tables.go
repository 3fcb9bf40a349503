package parser

import "regexp"

// ValuePattern is one step of a fallback chain: a canonical record name
// and a pattern whose single capture group is the amount.
type ValuePattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// LiabilityPattern extracts one liability record. Group indices map the
// captures onto the monthly repayment and outstanding total explicitly,
// since legacy formats list them in either order. A MonthlyGroup of 0
// means the pattern carries a single figure used for both fields.
type LiabilityPattern struct {
	Name         string
	Pattern      *regexp.Regexp
	TotalGroup   int
	MonthlyGroup int
}

// ETFAlias maps a colloquial fund name onto a fixed ticker.
type ETFAlias struct {
	Keyword string
	Symbol  string
	Name    string
}

// Tables bundles every keyword and pattern table the parser consults,
// so locales and provider rosters can be extended without touching the
// parsing logic.
type Tables struct {
	IncomeNames     []KeywordRule
	IncomeFallback  []ValuePattern
	ExpenseFallback []ValuePattern

	AssetBuckets   []KeywordRule
	AssetLegacy    []ValuePattern
	StockIgnore    []string
	ETFAliases     []ETFAlias

	Liabilities []LiabilityPattern

	GoalFallback []ValuePattern

	InsuranceCategories []string
	InsuranceProviders  []string
}

// Asset bucket keys used by AssetBuckets and AssetLegacy.
const (
	bucketCash  = "cash"
	bucketStock = "stock"
	bucketMPF   = "mpf"
	bucketFund  = "fund"
	bucketOther = "other"
)

// liabilityPattern builds the common "name: total[, 月供 monthly]" form.
func liabilityPattern(name, label string) LiabilityPattern {
	return LiabilityPattern{
		Name:         name,
		Pattern:      regexp.MustCompile(label + `[：:]\s*\$?([\d,]+)(?:[,，]\s*月供\s*\$?([\d,]+))?`),
		TotalGroup:   1,
		MonthlyGroup: 2,
	}
}

// DefaultTables returns the built-in Hong Kong oriented tables.
func DefaultTables() Tables {
	return Tables{
		IncomeNames: []KeywordRule{
			{Keyword: "工作", Category: "工作收入"},
			{Keyword: "年金", Exclude: "收入", Category: "年金收入"},
			{Keyword: "退休金", Category: "退休金"},
		},
		IncomeFallback: []ValuePattern{
			{"工作收入", regexp.MustCompile(`(?i)工作收?入?[：:]\s*\$?([\d,]+)`)},
			{"工作收入", regexp.MustCompile(`(?i)salary[：:]\s*\$?([\d,]+)`)},
			{"年金收入", regexp.MustCompile(`年金[：:]\s*\$?([\d,]+)`)},
			{"退休金", regexp.MustCompile(`退休金[：:]\s*\$?([\d,]+)`)},
			{"長俸", regexp.MustCompile(`長俸[：:]\s*\$?([\d,]+)`)},
			{"退休金", regexp.MustCompile(`(?i)pension[：:]\s*\$?([\d,]+)`)},
			{"股息收入", regexp.MustCompile(`股息[：:]\s*\$?([\d,]+)`)},
			{"股息收入", regexp.MustCompile(`(?i)dividends?[：:]\s*\$?([\d,]+)`)},
			{"兼職收入", regexp.MustCompile(`兼職[：:]\s*\$?([\d,]+)`)},
			{"兼職收入", regexp.MustCompile(`(?i)part[- ]?time[：:]\s*\$?([\d,]+)`)},
			{"其他收入", regexp.MustCompile(`其他收入[：:]\s*\$?([\d,]+)`)},
			{"租金收入", regexp.MustCompile(`租金收入[：:]\s*\$?([\d,]+)`)},
			{"被動收入", regexp.MustCompile(`被動收入[：:]\s*\$?([\d,]+)`)},
			{"投資收益", regexp.MustCompile(`投資收益[：:]\s*\$?([\d,]+)`)},
		},
		ExpenseFallback: []ValuePattern{
			{"家用", regexp.MustCompile(`家用[：:]\s*\$?([\d,]+)`)},
			{"日常開支", regexp.MustCompile(`日常[消費支出]*[：:]\s*\$?([\d,]+)`)},
			{"租金", regexp.MustCompile(`租[屋金][：:]\s*\$?([\d,]+)`)},
			{"租金", regexp.MustCompile(`(?i)rent[：:]\s*\$?([\d,]+)`)},
			{"供樓", regexp.MustCompile(`供[樓房][：:]\s*\$?([\d,]+)`)},
			{"供樓", regexp.MustCompile(`(?i)mortgage[：:]\s*\$?([\d,]+)`)},
			{"交通", regexp.MustCompile(`交通[：:]\s*\$?([\d,]+)`)},
			{"飲食", regexp.MustCompile(`飲食[：:]\s*\$?([\d,]+)`)},
			{"娛樂", regexp.MustCompile(`娛樂[：:]\s*\$?([\d,]+)`)},
			{"水電煤", regexp.MustCompile(`水電煤[：:]\s*\$?([\d,]+)`)},
			{"電話費", regexp.MustCompile(`電話費[：:]\s*\$?([\d,]+)`)},
		},
		AssetBuckets: []KeywordRule{
			{Keyword: "cash", Category: bucketCash},
			{Keyword: "現金", Category: bucketCash},
			{Keyword: "stock", Exclude: "holding", Category: bucketStock},
			{Keyword: "股票", Exclude: "持倉", Category: bucketStock},
			{Keyword: "mpf", Category: bucketMPF},
			{Keyword: "強積金", Category: bucketMPF},
			{Keyword: "fund", Category: bucketFund},
			{Keyword: "基金", Category: bucketFund},
			{Keyword: "savings", Category: bucketOther},
			{Keyword: "保單價值", Category: bucketOther},
		},
		AssetLegacy: []ValuePattern{
			{bucketCash, regexp.MustCompile(`(?i)(?:cash\s*balance|cash|現金)[^：:\n]*[：:]\s*\$?([\d,]+)`)},
			{bucketStock, regexp.MustCompile(`(?i)stocks?[^：:\n]*[：:]\s*\$?([\d,]+)`)},
		},
		StockIgnore: []string{
			"CASH", "STOCK", "MPF", "FUND", "ASSET", "TOTAL", "INSURANCE", "LIABILITIES",
		},
		ETFAliases: []ETFAlias{
			{"恒指ETF", "2833.HK", "恒指ETF"},
			{"盈富基金", "2800.HK", "盈富基金"},
			{"恒生指數ETF", "2833.HK", "恒生指數ETF"},
			{"盈富", "2800.HK", "盈富基金"},
		},
		Liabilities: []LiabilityPattern{
			{
				Name:         "信用卡分期",
				Pattern:      regexp.MustCompile(`(?s)卡數[分期]*[：:]\s*\$?([\d,]+)\s*[/每]?\s*月.*?總數?\s*\$?([\d,]+)`),
				TotalGroup:   2,
				MonthlyGroup: 1,
			},
			liabilityPattern("信用卡", `信用卡`),
			liabilityPattern("私人貸款", `私人貸款`),
			liabilityPattern("學生貸款", `學貸`),
			liabilityPattern("車貸", `車貸`),
			liabilityPattern("按揭", `按揭`),
			liabilityPattern("貸款", `貸款`),
		},
		GoalFallback: []ValuePattern{
			{"退休生活", regexp.MustCompile(`退休[^：:\d]*[：:]\s*\$?([\d,]+)`)},
			{"退休生活", regexp.MustCompile(`(?i)retirement[^：:\d]*[：:]\s*\$?([\d,]+)`)},
			{"置業計劃", regexp.MustCompile(`置業[^：:\d]*[：:]\s*\$?([\d,]+)`)},
			{"置業計劃", regexp.MustCompile(`(?i)home[^：:\d]*[：:]\s*\$?([\d,]+)`)},
			{"子女教育", regexp.MustCompile(`教育[^：:\d]*[：:]\s*\$?([\d,]+)`)},
			{"子女教育", regexp.MustCompile(`(?i)education[^：:\d]*[：:]\s*\$?([\d,]+)`)},
			{"醫療儲備", regexp.MustCompile(`醫療[^：:\d]*[：:]\s*\$?([\d,]+)`)},
			{"醫療儲備", regexp.MustCompile(`(?i)medical[^：:\d]*[：:]\s*\$?([\d,]+)`)},
		},
		InsuranceCategories: []string{
			"人壽", "意外", "醫療", "危疾", "年金", "儲蓄", "基金", "其他",
		},
		InsuranceProviders: []string{
			"AIA", "Manulife", "Prudential", "Zurich", "Fwd", "Cigna", "Bupa",
			"Axa", "Hsbc", "HangSang", "Boc", "Chubb", "Mapfre", "Sun Life",
			"Ftlife", "Generali", "YF Life", "Bowtie", "Blue", "OneDegree",
			"CTF", "Eagle",
		},
	}
}
