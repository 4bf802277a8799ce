package stat

import (
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/analyze"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumArcs               int
	TokensPerSentenceMean float64
	ArcWeightMean         float64
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	return &Handler{}
}

// Aggregate folds one orchestration result into the statistics.
// Node counts exclude the synthetic ROOT token.
func (h *Handler) Aggregate(res analyze.Result) {
	h.stats.NumSentences += len(res.Parsed)

	var weightSum float64
	for _, p := range res.Parsed {
		if len(p.Nodes) > 0 {
			h.stats.NumTokens += len(p.Nodes) - 1
		}
		h.stats.NumArcs += len(p.Edges)
		for _, e := range p.Edges {
			weightSum += e.Weight
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = float64(h.stats.NumTokens) / float64(h.stats.NumSentences)
	}
	if h.stats.NumArcs > 0 {
		h.stats.ArcWeightMean = weightSum / float64(h.stats.NumArcs)
	}
}
