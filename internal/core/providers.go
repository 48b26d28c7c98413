package core

import "context"

// Generator produces the final answer text from a fully assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PriceUpdater pulls fresh ticket prices from the booking API and writes
// them into the knowledge base.
type PriceUpdater interface {
	UpdatePrices(ctx context.Context) (PriceReport, error)
}

// PriceReport summarizes one price-update cycle.
type PriceReport struct {
	TotalProducts int
	Categories    map[string]int
	MarkdownBytes int
}
