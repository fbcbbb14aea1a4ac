package gemchat

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Price holds a model's USD price per million tokens.
type Price struct {
	Input  decimal.Decimal
	Output decimal.Decimal
}

var million = decimal.NewFromInt(1_000_000)

// pricing is the static per-model price table, USD per million tokens.
// Read-only at runtime.
var pricing = map[string]Price{
	"gemini-2.5-flash-preview-05-20": {usd("0.15"), usd("0.60")},
	"gemini-2.0-flash":               {usd("0.10"), usd("0.40")},
	"gemini-2.0-pro":                 {usd("1.25"), usd("5.00")},
	"gemini-1.5-flash":               {usd("0.075"), usd("0.30")},
	"gemini-1.5-pro":                 {usd("1.25"), usd("5.00")},
}

func usd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Cost computes the input and output cost for a token count pair
// against the static price table. Unknown models price at zero.
func Cost(model string, inputTokens, outputTokens int) (inputCost, outputCost decimal.Decimal) {
	p, ok := pricing[model]
	if !ok {
		return decimal.Zero, decimal.Zero
	}
	inputCost = p.Input.Mul(decimal.NewFromInt(int64(inputTokens))).Div(million)
	outputCost = p.Output.Mul(decimal.NewFromInt(int64(outputTokens))).Div(million)
	return inputCost, outputCost
}

// PricedModels returns the model IDs in the price table, sorted.
func PricedModels() []string {
	models := make([]string, 0, len(pricing))
	for m := range pricing {
		models = append(models, m)
	}
	slices.Sort(models)
	return models
}
