package gemchat_test

import (
	"testing"

	"github.com/fwojciec/gemchat"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotals_Add(t *testing.T) {
	t.Parallel()

	t.Run("accumulates tokens and costs", func(t *testing.T) {
		t.Parallel()
		var totals gemchat.Totals
		totals.Add(gemchat.Usage{InputTokens: 10, OutputTokens: 5}, decimal.NewFromInt(1), decimal.NewFromInt(2))
		totals.Add(gemchat.Usage{InputTokens: 1, OutputTokens: 1}, decimal.NewFromInt(3), decimal.NewFromInt(4))
		assert.Equal(t, 11, totals.InputTokens)
		assert.Equal(t, 6, totals.OutputTokens)
		assert.True(t, totals.Cost().Equal(decimal.NewFromInt(10)))
	})

	t.Run("clamps negative counts to zero", func(t *testing.T) {
		t.Parallel()
		var totals gemchat.Totals
		totals.Add(gemchat.Usage{InputTokens: -5, OutputTokens: -1}, decimal.Zero, decimal.Zero)
		assert.Equal(t, 0, totals.InputTokens)
		assert.Equal(t, 0, totals.OutputTokens)
	})
}

func TestTotals_Reset(t *testing.T) {
	t.Parallel()

	var totals gemchat.Totals
	totals.Add(gemchat.Usage{InputTokens: 10, OutputTokens: 5}, decimal.NewFromInt(1), decimal.NewFromInt(2))
	totals.Reset()
	assert.Equal(t, 0, totals.InputTokens)
	assert.Equal(t, 0, totals.OutputTokens)
	assert.True(t, totals.InputCost.IsZero())
	assert.True(t, totals.OutputCost.IsZero())
}
