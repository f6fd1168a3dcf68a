package gemini

import "fmt"

// Input pricing in USD per million tokens. Output is a small fixed
// fraction of input for this workload and is folded into the estimate.
const (
	extractPricePerMTok = 0.10
	definePricePerMTok  = 0.30
)

// charsPerToken is the rough chars-to-tokens heuristic used for
// estimation only; billing uses the provider's real count.
const charsPerToken = 4

// EstimateCost returns the estimated API cost in USD for processing
// content, plus a human-readable breakdown. Both models see roughly the
// full document (extraction per chunk, definitions with chunk context).
func EstimateCost(content string) (float64, string) {
	inputTokens := float64(len(content)) / charsPerToken

	extractCost := inputTokens / 1_000_000 * extractPricePerMTok
	defineCost := inputTokens / 1_000_000 * definePricePerMTok

	breakdown := fmt.Sprintf("Extraction: $%.4f, Definitions: $%.4f", extractCost, defineCost)
	return extractCost + defineCost, breakdown
}
