package gemchat_test

import (
	"testing"

	"github.com/fwojciec/gemchat"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCost(t *testing.T) {
	t.Parallel()

	t.Run("one million input tokens equals the input price", func(t *testing.T) {
		t.Parallel()
		in, out := gemchat.Cost("gemini-1.5-pro", 1_000_000, 0)
		assert.True(t, in.Equal(decimal.RequireFromString("1.25")), "input cost = %s", in)
		assert.True(t, out.IsZero())
	})

	t.Run("one million output tokens equals the output price", func(t *testing.T) {
		t.Parallel()
		in, out := gemchat.Cost("gemini-1.5-pro", 0, 1_000_000)
		assert.True(t, in.IsZero())
		assert.True(t, out.Equal(decimal.RequireFromString("5.00")), "output cost = %s", out)
	})

	t.Run("fractional counts scale linearly", func(t *testing.T) {
		t.Parallel()
		in, out := gemchat.Cost("gemini-1.5-flash", 200_000, 100_000)
		assert.True(t, in.Equal(decimal.RequireFromString("0.015")), "input cost = %s", in)
		assert.True(t, out.Equal(decimal.RequireFromString("0.03")), "output cost = %s", out)
	})

	t.Run("unknown model prices at zero", func(t *testing.T) {
		t.Parallel()
		in, out := gemchat.Cost("mystery-model", 1_000_000, 1_000_000)
		assert.True(t, in.IsZero())
		assert.True(t, out.IsZero())
	})

	t.Run("zero tokens cost zero", func(t *testing.T) {
		t.Parallel()
		in, out := gemchat.Cost("gemini-2.0-flash", 0, 0)
		assert.True(t, in.IsZero())
		assert.True(t, out.IsZero())
	})
}

func TestPricedModels(t *testing.T) {
	t.Parallel()

	models := gemchat.PricedModels()
	assert.Contains(t, models, "gemini-2.5-flash-preview-05-20")
	assert.Contains(t, models, "gemini-1.5-flash")
	assert.IsIncreasing(t, models)
}
