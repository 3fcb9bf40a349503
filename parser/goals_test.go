package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wkchan/ifa-report-service/dto"
)

func TestGoalStructuredWithAgeInLabel(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseGoalSection("i) 60歲置業：2,000,000\n", profile)

	if assert.Len(t, profile.Goals, 1) {
		g := profile.Goals[0]
		assert.Equal(t, "60歲置業", g.Name)
		assert.Equal(t, float64(2000000), g.Amount)
		assert.Equal(t, 60, g.ByAge)
	}
}

func TestGoalStructuredDefaultAge(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseGoalSection("環遊世界：500,000\n", profile)

	if assert.Len(t, profile.Goals, 1) {
		assert.Equal(t, "環遊世界", profile.Goals[0].Name)
		assert.Equal(t, defaultGoalAge, profile.Goals[0].ByAge)
	}
}

func TestGoalRetirementConvention(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseGoalSection("65歲退休：4000000\n", profile)

	if assert.Len(t, profile.Goals, 1) {
		g := profile.Goals[0]
		assert.Equal(t, "65歲退休", g.Name)
		assert.Equal(t, float64(4000000), g.Amount)
		assert.Equal(t, 65, g.ByAge)
	}
}

func TestGoalFallbackWhenFigureOnNextLine(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseGoalSection("退休目標：\n$4,000,000\n", profile)

	if assert.Len(t, profile.Goals, 1) {
		g := profile.Goals[0]
		assert.Equal(t, "退休生活", g.Name)
		assert.Equal(t, float64(4000000), g.Amount)
		assert.Equal(t, defaultGoalAge, g.ByAge)
	}
}

func TestGoalNoiseYieldsNothing(t *testing.T) {
	profile := dto.NewClientProfile()
	newTestParser().parseGoalSection("冇特別目標\n", profile)

	assert.Empty(t, profile.Goals)
}
