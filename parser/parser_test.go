package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wkchan/ifa-report-service/dto"
)

// sequentialIDs returns a deterministic generator for tests.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("policy-%d", n)
	}
}

func newTestParser() *Parser {
	return New(WithIDGenerator(sequentialIDs()))
}

const sampleNarrative = `A. 基本資料：
姓名：Chu Tak Fai
姓別：M
年齡：59 1966/9/5
聯絡電話：92508697
家庭背景：已婚，沒有子女
職業：退休警員，現職合約車司機

B. 財務資料：

1.每月收入：
i) 工作：$20000
ii) 年金：$7000
iii) 退休金：$13000

2.每月支出：
i) 家用：$10000
ii) 日常：8000

3. 負債：
信用卡:50000, 月供2000
私人貸款:100000, 月供5000

4. 資產：
i)Cash balance：$1,000,000
ii) Stock & derivatives: $2,000,000
iii) 2388.HK 中銀香港
iv) 恒指ETF

5.現有保險資料：
i)人壽︰
iI)意外︰
iii)醫療︰
1. Zurich Healthplus Medical Classical Plan,年供：$7043.82
2. CTF LIFE - High Med,年供,$20000/年
iv)危疾︰
1. CTF LIFE - 危疾 - 168加強版,保額：1,000,000 HKD ,年供,$20000/年
v)年金︰1. HSBC 年金,原本價值：1,200,000 HKD ,月派：$5200,共240個月，已拎86個月，派多154個月
2. HangSang ,月派：$1800
vi)儲蓄︰Eagle MAXIMA 25 yrs,現金價值：$1,460,000
vii)基金︰
viii)其他︰

C. 財務目標：
65歲退休 : 4000000`

func TestParseFullNarrative(t *testing.T) {
	profile := newTestParser().Parse(sampleNarrative)

	assert.Equal(t, "Chu Tak Fai", profile.Client.Name)
	assert.Equal(t, "男", profile.Client.Gender)
	assert.Equal(t, 59, profile.Client.Age)
	assert.Equal(t, "92508697", profile.Client.Phone)
	assert.Equal(t, "退休警員，現職合約車司機", profile.Client.Occupation)
	assert.Equal(t, "已婚，沒有子女", profile.Client.FamilyBackground)

	assert.Equal(t, []dto.CashFlowItem{
		{Name: "工作收入", Amount: 20000},
		{Name: "年金收入", Amount: 7000},
		{Name: "退休金", Amount: 13000},
	}, profile.Income)

	assert.Equal(t, []dto.CashFlowItem{
		{Name: "家用", Amount: 10000},
		{Name: "日常", Amount: 8000},
	}, profile.Expenses)

	assert.Equal(t, float64(1000000), profile.Assets.Cash)
	assert.Equal(t, float64(2000000), profile.Assets.Stock)

	if assert.Len(t, profile.Assets.StockHoldings, 2) {
		assert.Equal(t, "2388.HK", profile.Assets.StockHoldings[0].Symbol)
		assert.Equal(t, "中銀香港", profile.Assets.StockHoldings[0].Name)
		assert.Equal(t, "HK", profile.Assets.StockHoldings[0].Market)
		assert.Equal(t, 0, profile.Assets.StockHoldings[0].Shares)
		assert.Equal(t, "2833.HK", profile.Assets.StockHoldings[1].Symbol)
	}

	if assert.Len(t, profile.Liabilities, 2) {
		assert.Equal(t, dto.Liability{Name: "信用卡", Monthly: 2000, Total: 50000}, profile.Liabilities[0])
		assert.Equal(t, dto.Liability{Name: "私人貸款", Monthly: 5000, Total: 100000}, profile.Liabilities[1])
	}

	// 人壽/意外/基金/其他 are placeholder-only and contribute nothing.
	if assert.Len(t, profile.Insurance, 6) {
		types := make([]string, 0, len(profile.Insurance))
		for _, policy := range profile.Insurance {
			types = append(types, policy.Type)
		}
		assert.Equal(t, []string{"醫療", "醫療", "危疾", "年金", "年金", "儲蓄"}, types)

		zurich := profile.Insurance[0]
		assert.Equal(t, "ZURICH", zurich.Provider)
		assert.Equal(t, "Healthplus Medical Classical Plan", zurich.Name)
		assert.Equal(t, 7043.82, zurich.Premium)
		assert.Equal(t, "年", zurich.Frequency)

		highMed := profile.Insurance[1]
		assert.Equal(t, "CTF", highMed.Provider)
		assert.Equal(t, float64(20000), highMed.Premium)

		critical := profile.Insurance[2]
		assert.Equal(t, float64(1000000), critical.Coverage)
		assert.Equal(t, float64(20000), critical.Premium)

		annuity := profile.Insurance[3]
		assert.Equal(t, "HSBC", annuity.Provider)
		assert.Equal(t, float64(5200), annuity.Premium)
		assert.Equal(t, "月", annuity.Frequency)
		assert.Equal(t, float64(1200000), annuity.Coverage)

		hangSang := profile.Insurance[4]
		assert.Equal(t, "HANGSANG", hangSang.Provider)
		assert.Equal(t, float64(1800), hangSang.Premium)
		assert.Equal(t, "月", hangSang.Frequency)

		savings := profile.Insurance[5]
		assert.Equal(t, "EAGLE", savings.Provider)
		assert.Equal(t, float64(1460000), savings.Coverage)
	}

	if assert.Len(t, profile.Goals, 1) {
		assert.Equal(t, "65歲退休", profile.Goals[0].Name)
		assert.Equal(t, float64(4000000), profile.Goals[0].Amount)
		assert.Equal(t, 65, profile.Goals[0].ByAge)
	}
}

func TestParseLooseFormatBasics(t *testing.T) {
	profile := newTestParser().Parse("姓名：陳大文\n年齡：40\n每月收入：\n工作：$30000\n")

	assert.Equal(t, "陳大文", profile.Client.Name)
	assert.Equal(t, 40, profile.Client.Age)
	assert.Equal(t, []dto.CashFlowItem{{Name: "工作收入", Amount: 30000}}, profile.Income)
}

func TestParseEmptyInputYieldsDefaults(t *testing.T) {
	profile := newTestParser().Parse("")

	assert.Equal(t, dto.NotProvided, profile.Client.Name)
	assert.Equal(t, dto.NotProvided, profile.Client.Gender)
	assert.Equal(t, 0, profile.Client.Age)
	assert.NotNil(t, profile.Income)
	assert.NotNil(t, profile.Expenses)
	assert.NotNil(t, profile.Assets.StockHoldings)
	assert.NotNil(t, profile.Assets.CustomAssets)
	assert.NotNil(t, profile.Insurance)
	assert.NotNil(t, profile.Liabilities)
	assert.NotNil(t, profile.Goals)
	assert.Empty(t, profile.Income)
	assert.Empty(t, profile.Insurance)
}

func TestParseIsStructurallyIdempotent(t *testing.T) {
	first := New(WithIDGenerator(sequentialIDs())).Parse(sampleNarrative)
	second := New(WithIDGenerator(sequentialIDs())).Parse(sampleNarrative)

	// Identical ID sequences injected, so the profiles compare deep-equal
	// including identifiers.
	assert.Equal(t, first, second)
}

func TestParseGarbageNeverPanics(t *testing.T) {
	inputs := []string{
		"：：：",
		"A.",
		"B.財務資料",
		"保險：\n,,,,\n",
		"資產：\n----\n",
		"負債：월供",
		"1.2.3.4.5.",
		strings.Repeat("年齡：", 50),
	}
	p := newTestParser()
	for _, in := range inputs {
		assert.NotPanics(t, func() { p.Parse(in) }, "input %q", in)
	}
}
