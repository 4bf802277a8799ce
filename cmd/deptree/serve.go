package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/analyze"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/parse"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tagger"
)

// ---- wire types ---------------------------------------------------------

type parseRequest struct {
	Samples    []string `json:"samples"`
	Algorithm  string   `json:"algorithm"`
	MaxSamples int      `json:"maxSamples"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type algorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleParse(hdl *analyze.Handler, fallback parse.Algorithm) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body parseRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Samples) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'samples' field")
			return
		}

		alg := fallback
		if body.Algorithm != "" {
			alg = parse.Algorithm(body.Algorithm)
		}

		res, err := hdl.Run(r.Context(), body.Samples, analyze.Config{
			Algorithm:  alg,
			MaxSamples: body.MaxSamples,
		})
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func handleAlgorithms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, algorithmsResponse{Algorithms: algorithmNames()})
	}
}

// ---- serve command ------------------------------------------------------

func serveCommand(opts ServeOptions, ui UI) error {
	hdl := analyze.NewHandler(tagger.NewLexicon(), score.NewScorer(score.DefaultTable()))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse(hdl, opts.Algorithm))
	mux.HandleFunc("/api/algorithms", handleAlgorithms())

	log.Printf("listening on %s", opts.Addr)
	if err := http.ListenAndServe(opts.Addr, mux); err != nil {
		return err
	}
	return nil
}
