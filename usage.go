package gemchat

import "github.com/shopspring/decimal"

// Usage tracks token consumption for a single exchange.
//
// InputTokens covers everything sent to the model: the system prompt,
// any attached file handles, and the user text. OutputTokens covers the
// generated reply. Counts are best effort; a failed token-count call
// degrades to zero rather than blocking the exchange.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Totals accumulates token counts and costs across a session.
// Values only grow until an explicit Reset.
type Totals struct {
	InputTokens  int
	OutputTokens int
	InputCost    decimal.Decimal
	OutputCost   decimal.Decimal
}

// Add accumulates one exchange's usage and cost into the totals.
// Negative token counts are clamped to zero to guard against
// inconsistent upstream data.
func (t *Totals) Add(u Usage, inputCost, outputCost decimal.Decimal) {
	t.InputTokens += max(0, u.InputTokens)
	t.OutputTokens += max(0, u.OutputTokens)
	t.InputCost = t.InputCost.Add(inputCost)
	t.OutputCost = t.OutputCost.Add(outputCost)
}

// Reset zeroes all counters and costs unconditionally.
func (t *Totals) Reset() {
	*t = Totals{}
}

// Cost returns the combined input and output cost.
func (t Totals) Cost() decimal.Decimal {
	return t.InputCost.Add(t.OutputCost)
}
