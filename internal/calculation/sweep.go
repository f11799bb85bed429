package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultSweepWorkers bounds concurrent projections in SweepReturnRates.
	DefaultSweepWorkers = 8
	// MaxSweepRates caps how many rates one sweep may project.
	MaxSweepRates = 1000
)

// SweepResult is one retirement projection at an alternative return rate
type SweepResult struct {
	ReturnPercent decimal.Decimal              `json:"return_percent" yaml:"return_percent"`
	Projection    *domain.RetirementProjection `json:"projection" yaml:"projection"`
}

// RateRange expands [from, to] in step increments, inclusive of both ends.
func RateRange(from, to, step decimal.Decimal) ([]decimal.Decimal, error) {
	if !step.IsPositive() {
		return nil, &domain.ValidationError{Field: "step", Reason: fmt.Sprintf("must be positive (got %s)", step)}
	}
	if to.LessThan(from) {
		return nil, &domain.ValidationError{Field: "to", Reason: fmt.Sprintf("must not be below from (%s < %s)", to, from)}
	}
	steps := to.Sub(from).Div(step).Floor()
	if steps.GreaterThanOrEqual(decimal.NewFromInt(MaxSweepRates)) {
		return nil, &domain.ValidationError{Field: "step", Reason: fmt.Sprintf("gives %s rates, more than %d", steps.Add(decimal.NewFromInt(1)), MaxSweepRates)}
	}
	count := steps.IntPart() + 1
	rates := make([]decimal.Decimal, 0, count)
	for r := from; r.LessThanOrEqual(to); r = r.Add(step) {
		rates = append(rates, r)
	}
	return rates, nil
}

// SweepReturnRates re-runs ProjectRetirement once per rate, holding every other
// input fixed. Projections run concurrently on at most workers goroutines and
// results keep the order of rates. The first validation error is returned.
func SweepReturnRates(ctx context.Context, in domain.RetirementInput, rates []decimal.Decimal, workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = DefaultSweepWorkers
	}

	results := make([]SweepResult, len(rates))
	errs := make([]error, len(rates))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, rate := range rates {
		semaphore <- struct{}{}
		wg.Add(1)
		go func(idx int, rate decimal.Decimal) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			variant := in
			variant.ExpectedReturnPercent = rate
			proj, err := ProjectRetirement(variant)
			if err != nil {
				errs[idx] = fmt.Errorf("return %s%%: %w", rate, err)
				return
			}
			results[idx] = SweepResult{ReturnPercent: rate, Projection: proj}
		}(i, rate)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
