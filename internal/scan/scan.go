// Package scan implements the mock receipt analyzer. There is no real
// recognition pipeline: analysis waits a fixed delay and picks one entry
// from a canned candidate table. The delay is cancellable through the
// caller's context, so a dismissed analysis never reports a result.
package scan

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"expenseai/internal/model"
)

// Detection is one mocked recognition result.
type Detection struct {
	Amount   float64
	Category string
	Note     string
}

// Title returns the entry title used when a detection is confirmed.
func (d Detection) Title() string {
	return fmt.Sprintf("%s (Receipt)", d.Category)
}

type candidate struct {
	amount   float64
	category string
}

var candidates = []candidate{
	{199, model.CategoryFood},
	{249, model.CategoryTransport},
	{350, model.CategoryFood},
	{499, model.CategoryShopping},
	{120, model.CategoryBills},
}

// DefaultDelay is how long an analysis takes unless overridden.
const DefaultDelay = 800 * time.Millisecond

// Analyzer produces mock detections.
type Analyzer struct {
	delay time.Duration
	rng   *rand.Rand
}

// New returns an analyzer with the default delay and a time-seeded pick.
func New() *Analyzer {
	return NewSeeded(DefaultDelay, time.Now().UnixNano())
}

// NewSeeded returns an analyzer with a fixed delay and seed, for tests.
func NewSeeded(delay time.Duration, seed int64) *Analyzer {
	return &Analyzer{
		delay: delay,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Analyze waits the analysis delay and returns a detection. If ctx is
// cancelled before the delay elapses, no detection is produced and the
// context error is returned.
func (a *Analyzer) Analyze(ctx context.Context) (Detection, error) {
	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Detection{}, ctx.Err()
	case <-timer.C:
	}

	c := candidates[a.rng.Intn(len(candidates))]
	return Detection{
		Amount:   c.amount,
		Category: c.category,
		Note:     "Lunch",
	}, nil
}
