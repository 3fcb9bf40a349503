package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSectionsStructuredGrammar(t *testing.T) {
	text := `A. 基本資料：
姓名：John
B. 財務資料：
1.每月收入：
i) 工作：$20000
2.每月支出：
i) 家用：$9000
3. 負債：
信用卡:10000
4. 資產：
i) Cash：$50000
5.現有保險資料：
i)人壽︰AIA
C. 財務目標：
60歲退休 : 3000000`

	s := SplitSections(text)

	assert.Contains(t, s.Background, "姓名：John")
	assert.Contains(t, s.Income, "工作：$20000")
	assert.Contains(t, s.Expense, "家用：$9000")
	assert.Contains(t, s.Liabilities, "信用卡:10000")
	assert.Contains(t, s.Assets, "Cash：$50000")
	assert.Contains(t, s.Insurance, "人壽")
	assert.Contains(t, s.Goals, "60歲退休")
}

func TestSplitSectionsStructuredAnchorAlone(t *testing.T) {
	// The presence test is on the A./B./C. anchor alone; a structured
	// document missing whole sections still uses the strict grammar.
	s := SplitSections("A. 基本資料：\n姓名：John\n")

	assert.Contains(t, s.Background, "姓名：John")
	assert.Empty(t, s.Income)
	assert.Empty(t, s.Insurance)
}

func TestSplitSectionsLooseKeywords(t *testing.T) {
	text := "基本資料：\n姓名：John\n每月收入：\n工作：$10000\n資產：\n2800.HK\n財務目標：\n退休 : 2000000"

	s := SplitSections(text)

	assert.Contains(t, s.Background, "姓名：John")
	assert.Contains(t, s.Income, "工作")
	assert.Contains(t, s.Assets, "2800.HK")
	assert.Contains(t, s.Goals, "退休")
}

func TestSplitSectionsLooseDuplicateHeadersKeepFirst(t *testing.T) {
	text := "每月收入：\n工作：$10000\n收入：\n兼職：$2000"

	s := SplitSections(text)

	// The later, less specific income header must not reset the section.
	assert.Contains(t, s.Income, "工作：$10000")
}

func TestSplitSectionsNoBoundaries(t *testing.T) {
	s := SplitSections("只是一些隨意的文字，沒有任何標題")

	assert.Equal(t, "只是一些隨意的文字，沒有任何標題", s.Background)
	assert.Empty(t, s.Income)
	assert.Empty(t, s.Goals)
}

func TestSplitSectionsLeadingTextBecomesBackground(t *testing.T) {
	s := SplitSections("姓名：陳大文\n年齡：40\n每月收入：\n工作：$30000\n")

	assert.Contains(t, s.Background, "姓名：陳大文")
	assert.Contains(t, s.Income, "工作：$30000")
}
