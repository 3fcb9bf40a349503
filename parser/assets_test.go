package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wkchan/ifa-report-service/dto"
)

func TestAssetBucketsLastWriteWins(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection(
		"i) Cash balance：$500,000\nii) 現金：$600,000\niii) MPF：$200,000\niv) 基金：$100,000\nv) 保單價值：$50,000\n",
		profile,
	)

	assert.Equal(t, float64(600000), profile.Assets.Cash)
	assert.Equal(t, float64(200000), profile.Assets.MPF)
	assert.Equal(t, float64(100000), profile.Assets.Fund)
	assert.Equal(t, float64(50000), profile.Assets.Other)
}

func TestStockHoldingExplicitShares(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("0700.HK 騰訊控股 - 500股\n", profile)

	if assert.Len(t, profile.Assets.StockHoldings, 1) {
		h := profile.Assets.StockHoldings[0]
		assert.Equal(t, "0700.HK", h.Symbol)
		assert.Equal(t, "騰訊控股", h.Name)
		assert.Equal(t, 500, h.Shares)
		assert.Equal(t, "HK", h.Market)
	}
}

func TestStockHoldingSymbolAndShares(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("NVDA.US - 10\n", profile)

	if assert.Len(t, profile.Assets.StockHoldings, 1) {
		h := profile.Assets.StockHoldings[0]
		assert.Equal(t, "NVDA.US", h.Symbol)
		assert.Equal(t, "", h.Name)
		assert.Equal(t, 10, h.Shares)
		assert.Equal(t, "US", h.Market)
	}
}

func TestStockHoldingImplicitMarketInference(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("2388.HK 中銀香港\nAAPL\n", profile)

	if assert.Len(t, profile.Assets.StockHoldings, 2) {
		assert.Equal(t, "HK", profile.Assets.StockHoldings[0].Market)
		assert.Equal(t, 0, profile.Assets.StockHoldings[0].Shares)

		// Alphabetic code defaults to the US market.
		assert.Equal(t, "AAPL", profile.Assets.StockHoldings[1].Symbol)
		assert.Equal(t, "US", profile.Assets.StockHoldings[1].Market)
	}
}

func TestStockHoldingETFAlias(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("恒指ETF\n盈富基金\n", profile)

	if assert.Len(t, profile.Assets.StockHoldings, 2) {
		assert.Equal(t, "2833.HK", profile.Assets.StockHoldings[0].Symbol)
		assert.Equal(t, "2800.HK", profile.Assets.StockHoldings[1].Symbol)
	}
}

func TestStockHoldingETFAliasIgnoresCase(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("恒指etf\n", profile)

	if assert.Len(t, profile.Assets.StockHoldings, 1) {
		assert.Equal(t, "2833.HK", profile.Assets.StockHoldings[0].Symbol)
	}
}

func TestStockHoldingIgnoresCategoryWords(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("TOTAL\nCASH\nSTOCK\n", profile)

	assert.Empty(t, profile.Assets.StockHoldings)
}

func TestStockHoldingSkipsLabeledLines(t *testing.T) {
	// Category lines carry colons and must never be read as tickers.
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("Cash：$1,000,000\n", profile)

	assert.Empty(t, profile.Assets.StockHoldings)
	assert.Equal(t, float64(1000000), profile.Assets.Cash)
}

func TestAssetLegacyFallbackWhenBucketsEmpty(t *testing.T) {
	// The list-line label here is "備註", which maps to no bucket, so
	// only the whole-block legacy pattern can recover the cash figure.
	profile := dto.NewClientProfile()
	newTestParser().parseAssetSection("備註：所有 cash balance: $800,000\n", profile)

	assert.Equal(t, float64(800000), profile.Assets.Cash)
}
