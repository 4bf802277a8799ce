// Package analyze orchestrates batch dependency parsing: it tags each raw
// sample, dispatches the selected parser and aggregates render-ready
// results with progress reporting.
package analyze

import (
	"context"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/parse"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/render"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tagger"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
)

// DefaultChunkSize is the number of samples processed between progress
// reports and cancellation checks.
const DefaultChunkSize = 50

// Config selects the algorithm and bounds one orchestration run.
type Config struct {
	Algorithm parse.Algorithm

	// MaxSamples truncates the input batch. Zero or negative means no limit.
	MaxSamples int

	// ChunkSize overrides DefaultChunkSize when positive.
	ChunkSize int

	// OnProgress, when set, receives cumulative integer percentages.
	// Within one run the values never decrease and end at 100.
	OnProgress func(percent int)
}

// Result aggregates one orchestration run.
type Result struct {
	// Representative is the first successfully parsed sentence's
	// projection, or an empty result when nothing parsed.
	Representative render.Result `json:"representative"`

	// Parsed holds one projection per parsed sentence, in input order.
	Parsed []render.Result `json:"parsed"`

	// Sentences lists every sentence actually parsed.
	Sentences []string `json:"sentences"`

	Algorithm      parse.Algorithm `json:"algorithm"`
	TotalProcessed int             `json:"totalProcessed"`
}

// Handler runs batches. The tagging collaborator is injected; the engine
// holds no tagging singleton.
type Handler struct {
	Tagger tagger.Tagger
	Scorer *score.Scorer
}

// NewHandler creates an orchestrator over the given collaborators.
func NewHandler(tg tagger.Tagger, sc *score.Scorer) *Handler {
	return &Handler{Tagger: tg, Scorer: sc}
}

// Run processes the samples in input order, strictly sequentially.
//
// Per sample only the first segmented sentence is parsed; samples whose
// tagging fails or yields zero tokens are skipped without aborting the
// batch. Between chunks the context is checked: on cancellation the
// partially completed chunk is discarded and the committed result is
// returned together with the context error. An empty batch returns an
// empty, well-formed result and no error.
func (h *Handler) Run(ctx context.Context, samples []string, cfg Config) (Result, error) {
	res := Result{
		Representative: render.Empty(),
		Algorithm:      cfg.Algorithm,
	}

	parser, err := parse.New(cfg.Algorithm, h.Scorer)
	if err != nil {
		return res, err
	}

	if cfg.MaxSamples > 0 && len(samples) > cfg.MaxSamples {
		samples = samples[:cfg.MaxSamples]
	}

	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	total := len(samples)
	haveFirst := false

	for start := 0; start < total; start += chunkSize {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		end := start + chunkSize
		if end > total {
			end = total
		}

		// The chunk accumulates locally and commits at the boundary, so
		// a cancelled run never exposes a half-processed chunk.
		var (
			parsed    []render.Result
			sentences []string
		)

		for _, sample := range samples[start:end] {
			sentence := tagger.FirstSentence(sample)

			tokens, err := h.Tagger.Tag(sentence)
			if err != nil || len(tokens) == 0 {
				continue
			}
			tokens = token.Reindex(tokens)

			t, err := parser.Parse(tokens)
			if err != nil {
				continue
			}

			parsed = append(parsed, render.FromTree(tokens, t))
			sentences = append(sentences, sentence)
		}

		res.Parsed = append(res.Parsed, parsed...)
		res.Sentences = append(res.Sentences, sentences...)
		res.TotalProcessed += end - start

		if !haveFirst && len(res.Parsed) > 0 {
			res.Representative = res.Parsed[0]
			haveFirst = true
		}

		if cfg.OnProgress != nil && end < total {
			cfg.OnProgress(end * 100 / total)
		}
	}

	if cfg.OnProgress != nil {
		cfg.OnProgress(100)
	}

	return res, nil
}
