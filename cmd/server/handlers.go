package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/cours-de-latin/conjugator"
	"github.com/cours-de-latin/conjugator/internal/latinwordnet"
	"github.com/cours-de-latin/conjugator/internal/lemmaindex"
)

// ---- JSON response types ------------------------------------------------

type verbJSON struct {
	Lemma       string `json:"lemma"`
	URI         string `json:"uri"`
	Conjugation int    `json:"conjugation"`
	Deponent    bool   `json:"deponent"`
}

type conjugateResponse struct {
	Verb        verbJSON `json:"verb"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Form        string   `json:"form"`
}

type chartResponse struct {
	Verb  verbJSON          `json:"verb"`
	Chart *conjugator.Chart `json:"chart"`
}

type principalPartsResponse struct {
	Verb    verbJSON                  `json:"verb"`
	Parts   conjugator.PrincipalParts `json:"parts"`
	Summary string                    `json:"summary"`
}

type translateResponse struct {
	Tag         string   `json:"tag"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Conflicts   []string `json:"conflicts,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Lemmas  int    `json:"lemmas"`
	Lexemes int    `json:"cached_lexemes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

type server struct {
	conj    *conjugator.Conjugator
	index   *lemmaindex.Index
	lexemes *lexemeCache
	log     *slog.Logger
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/conjugate", s.handleConjugate)
	mux.HandleFunc("/api/chart", s.handleChart)
	mux.HandleFunc("/api/principal-parts", s.handlePrincipalParts)
	mux.HandleFunc("/api/translate", s.handleTranslate)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func toVerbJSON(l *conjugator.Lexeme) verbJSON {
	return verbJSON{
		Lemma:       l.Lemma(),
		URI:         l.URI(),
		Conjugation: l.Conjugation(),
		Deponent:    l.Deponent(),
	}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", slog.String("error", err.Error()))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// errorStatus maps domain and adapter errors to HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errBadRecord):
		if errors.Is(err, conjugator.ErrUnrecognizedMorphology) {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, conjugator.ErrInvalidCode),
		errors.Is(err, conjugator.ErrInvalidTag),
		errors.Is(err, conjugator.ErrNotAVerb):
		return http.StatusBadRequest
	case errors.Is(err, lemmaindex.ErrNotFound),
		errors.Is(err, latinwordnet.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// lexeme resolves the verb named by the verb= (dictionary form) or uri=
// query parameter.
func (s *server) lexeme(r *http.Request) (*conjugator.Lexeme, error) {
	q := r.URL.Query()
	uri := q.Get("uri")
	if uri == "" {
		verb := q.Get("verb")
		if verb == "" {
			return nil, errMissingVerb
		}
		var err error
		if uri, err = s.index.Lookup(verb); err != nil {
			return nil, err
		}
	}
	return s.lexemes.Get(r.Context(), uri)
}

var errMissingVerb = errors.New("missing 'verb' or 'uri' query parameter")

// verbOrError resolves the lexeme and writes the error response itself
// when that fails.
func (s *server) verbOrError(w http.ResponseWriter, r *http.Request) *conjugator.Lexeme {
	l, err := s.lexeme(r)
	switch {
	case err == nil:
		return l
	case errors.Is(err, errMissingVerb):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		status := errorStatus(err)
		if status >= 500 {
			s.log.ErrorContext(r.Context(), "resolve verb", slog.String("error", err.Error()))
		}
		s.writeError(w, status, err.Error())
	}
	return nil
}

// featureParams are the digit query parameters accepted in place of code=.
var featureParams = []string{"mood", "tense", "voice", "person", "number", "case"}

// codeFromQuery reads code= or, failing that, builds the code from the
// feature digits.
func codeFromQuery(r *http.Request) (conjugator.Code, error) {
	q := r.URL.Query()
	if raw := q.Get("code"); raw != "" {
		return conjugator.ParseCode(raw)
	}
	if q.Get("mood") == "" {
		return "", fmt.Errorf("%w: missing 'code' or 'mood' query parameter", conjugator.ErrInvalidCode)
	}
	d := make(map[string]int, len(featureParams))
	for _, name := range featureParams {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 9 {
			return "", fmt.Errorf("%w: %s=%q is not a digit", conjugator.ErrInvalidCode, name, raw)
		}
		d[name] = n
	}
	f := conjugator.VerbFeatures(
		conjugator.Mood(d["mood"]),
		conjugator.Tense(d["tense"]),
		conjugator.Voice(d["voice"]),
		conjugator.Person(d["person"]),
		conjugator.Number(d["number"]),
		conjugator.Case(d["case"]),
	)
	return conjugator.ParseCode(string(f.Code()))
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleConjugate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	code, err := codeFromQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l := s.verbOrError(w, r)
	if l == nil {
		return
	}
	form, err := s.conj.Conjugate(l, code)
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, conjugateResponse{
		Verb:        toVerbJSON(l),
		Code:        string(code),
		Description: code.Features().Describe(),
		Form:        form,
	})
}

func (s *server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	l := s.verbOrError(w, r)
	if l == nil {
		return
	}
	ch, err := s.conj.Chart(l)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, chartResponse{Verb: toVerbJSON(l), Chart: ch})
}

func (s *server) handlePrincipalParts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	l := s.verbOrError(w, r)
	if l == nil {
		return
	}
	pp, err := s.conj.PrincipalParts(l)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, principalPartsResponse{
		Verb:    toVerbJSON(l),
		Parts:   pp,
		Summary: pp.String(),
	})
}

func (s *server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	raw := r.URL.Query().Get("tag")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
		return
	}
	tag, err := conjugator.DecodeTag(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	code := tag.Code()
	s.writeJSON(w, http.StatusOK, translateResponse{
		Tag:         raw,
		Code:        string(code),
		Description: code.Features().Describe(),
		Conflicts:   tag.Conflicts(),
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Lemmas:  s.index.Len(),
		Lexemes: s.lexemes.Len(),
	})
}
