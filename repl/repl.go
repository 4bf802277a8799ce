// Package repl is the interactive parsing loop: type a sentence, see its
// dependency tree under the currently selected algorithm.
package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/parse"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/render"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tagger"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"

	"github.com/c-bata/go-prompt"
)

// algPrefix is the character in the prompt that prefixes an algorithm switch
const algPrefix = "/"

type Handler struct {
	Tagger    tagger.Tagger
	Scorer    *score.Scorer
	Algorithm parse.Algorithm

	// JSON switches the output from the arc table to the render projection.
	JSON bool
}

func NewHandler(tg tagger.Tagger, sc *score.Scorer, alg parse.Algorithm) *Handler {
	return &Handler{
		Tagger:    tg,
		Scorer:    sc,
		Algorithm: alg,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+F: next algorithm, Ctrl+X: toggle JSON, /<name>: pick algorithm, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🌳 ", h.completer(),
			prompt.OptionTitle("deptree repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.nextAlgorithm()
					fmt.Println("Algorithm set to: " + string(h.Algorithm))
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.JSON = !h.JSON
					fmt.Println("JSON set to " + fmt.Sprintf("%t", h.JSON))
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		if strings.HasPrefix(in, algPrefix) {
			h.switchAlgorithm(strings.TrimPrefix(in, algPrefix))
			continue
		}

		if err := h.parseOne(in); err != nil {
			fmt.Printf("❌ %s\n", err)
		}
	}
}

func (h *Handler) parseOne(in string) error {
	sentence := tagger.FirstSentence(in)

	tokens, err := h.Tagger.Tag(sentence)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return fmt.Errorf("nothing to parse")
	}
	tokens = token.Reindex(tokens)

	parser, err := parse.New(h.Algorithm, h.Scorer)
	if err != nil {
		return err
	}

	t, err := parser.Parse(tokens)
	if err != nil {
		return err
	}

	if h.JSON {
		r := render.NewJSONRenderer(os.Stdout)
		r.Indent = "  "
		return r.Render(render.FromTree(tokens, t))
	}

	all := tokens.WithRoot()
	for _, a := range t.Arcs() {
		head := all[a.Head]
		dep := all[a.Dep]
		fmt.Printf("%20q %12s ⟶ %20q %12s %8.4f\n", head.Text, head.Pos, dep.Text, dep.Pos, a.Weight)
	}

	return nil
}

func (h *Handler) switchAlgorithm(name string) {
	for _, alg := range parse.Algorithms() {
		if string(alg) == name {
			h.Algorithm = alg
			fmt.Println("Algorithm set to: " + name)
			return
		}
	}
	fmt.Printf("❌ unknown algorithm: %s\n", name)
}

// nextAlgorithm cycles the Algorithm option, following the
// parse.Algorithms() order.
func (h *Handler) nextAlgorithm() {
	supported := parse.Algorithms()
	for i, alg := range supported {
		if alg == h.Algorithm {
			switch i {
			case len(supported) - 1:
				h.Algorithm = supported[0]
			default:
				h.Algorithm = supported[i+1]
			}

			break
		}
	}
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if !strings.HasPrefix(befCursor, algPrefix) {
			return s
		}

		rest := strings.TrimPrefix(befCursor, algPrefix)
		for _, alg := range parse.Algorithms() {
			if strings.HasPrefix(string(alg), rest) {
				s = append(s, prompt.Suggest{Text: algPrefix + string(alg), Description: "switch algorithm"})
			}
		}

		return s
	}
}
