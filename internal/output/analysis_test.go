package output

import (
	"testing"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func retirementResult(name string, last bool, depletion int, final int64) domain.ScenarioResult {
	return domain.ScenarioResult{
		Name: name,
		Retirement: &domain.RetirementProjection{
			SavingsWillLast: last,
			DepletionAge:    depletion,
			FinalBalance:    decimal.NewFromInt(final),
		},
	}
}

func TestAnalyzeScenarios(t *testing.T) {
	tests := []struct {
		name      string
		scenarios []domain.ScenarioResult
		want      string
	}{
		{
			name:      "no retirement scenarios",
			scenarios: []domain.ScenarioResult{{Name: "Budget only"}},
			want:      "",
		},
		{
			name: "lasting plan beats a richer failing one",
			scenarios: []domain.ScenarioResult{
				retirementResult("Fails", false, 88, -10),
				retirementResult("Lasts", true, 0, 5),
			},
			want: "Lasts",
		},
		{
			name: "later depletion ranks higher",
			scenarios: []domain.ScenarioResult{
				retirementResult("Early", false, 80, -900000),
				retirementResult("Late", false, 86, -950000),
			},
			want: "Late",
		},
		{
			name: "larger final balance among lasting plans",
			scenarios: []domain.ScenarioResult{
				retirementResult("Small", true, 0, 100),
				retirementResult("Large", true, 0, 200),
			},
			want: "Large",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := AnalyzeScenarios(&domain.Report{Scenarios: tt.scenarios})
			assert.Equal(t, tt.want, rec.ScenarioName)
		})
	}
}
