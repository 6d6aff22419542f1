package conjugator

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Record is a lemma as returned by the LatinWordNet lemma endpoint.
type Record struct {
	URI   string `json:"uri"`
	Lemma string `json:"lemma"`
	// Morpho is the summary tag of the dictionary form, e.g. "v1spia--1-".
	Morpho string `json:"morpho"`
	// PrincipalParts holds the bare present, perfect and supine stems,
	// whitespace separated, "-" for a stem that does not exist.
	PrincipalParts string `json:"principal_parts"`
	// IrregularForms is a whitespace-separated list of tag=form entries.
	IrregularForms string `json:"irregular_forms"`
}

// verbMorphoRe matches the summary tag of a verb lemma: 1st singular
// present indicative, active or deponent, conjugation 1-4, optional
// i-variant.
var verbMorphoRe = regexp.MustCompile(`^v1spi(a|d)--([1-4])(-|i)$`)

// Lexeme is a verb ready for conjugation. It is immutable once built and
// may be shared between goroutines.
type Lexeme struct {
	uri         string
	conjugation int
	deponent    bool
	iVariant    bool
	// pp holds the four principal parts; pp[0] is the lemma form, the
	// others are bare stems or Absent.
	pp         [4]string
	irregulars map[Code]string
}

// NewLexeme builds a Lexeme from a lemma record. Every irregular tag is
// translated once here.
func NewLexeme(rec Record) (*Lexeme, error) {
	m := verbMorphoRe.FindStringSubmatch(rec.Morpho)
	if m == nil {
		return nil, &UnrecognizedMorphologyError{Morpho: rec.Morpho}
	}
	conj, _ := strconv.Atoi(m[2])

	stems := strings.Fields(rec.PrincipalParts)
	if len(stems) != 3 {
		return nil, fmt.Errorf("%w: %s: principal parts %q: got %d stems, want 3",
			ErrMalformedRecord, rec.URI, rec.PrincipalParts, len(stems))
	}
	if rec.Lemma == "" {
		return nil, fmt.Errorf("%w: %s: empty lemma", ErrMalformedRecord, rec.URI)
	}

	l := &Lexeme{
		uri:         rec.URI,
		conjugation: conj,
		deponent:    m[1] == "d",
		iVariant:    m[3] == "i",
		pp:          [4]string{rec.Lemma, stems[0], stems[1], stems[2]},
		irregulars:  make(map[Code]string),
	}
	if err := l.addIrregulars(rec.IrregularForms); err != nil {
		return nil, err
	}
	return l, nil
}

// addIrregulars parses the tag=form list into the override table.
func (l *Lexeme) addIrregulars(raw string) error {
	for _, entry := range strings.Fields(raw) {
		tagStr, form, ok := strings.Cut(entry, "=")
		if !ok || form == "" {
			return fmt.Errorf("%w: %s: irregular form %q", ErrMalformedRecord, l.uri, entry)
		}
		tag, err := DecodeTag(tagStr)
		if err != nil {
			return fmt.Errorf("%s: irregular form %q: %w", l.uri, entry, err)
		}
		if conflicts := tag.Conflicts(); len(conflicts) > 0 {
			slog.Warn("ambiguous irregular tag",
				slog.String("uri", l.uri),
				slog.String("tag", tagStr),
				slog.Any("discarded", conflicts),
			)
		}
		code := tag.Code()
		if prev, dup := l.irregulars[code]; dup {
			slog.Debug("irregular form replaced",
				slog.String("uri", l.uri),
				slog.String("code", string(code)),
				slog.String("old", prev),
				slog.String("new", form),
			)
		}
		l.irregulars[code] = form
	}
	return nil
}

// URI returns the lexical service identifier.
func (l *Lexeme) URI() string { return l.uri }

// Lemma returns the dictionary form, which is also the first principal part.
func (l *Lexeme) Lemma() string { return l.pp[0] }

// Conjugation returns the conjugation class, 1 to 4.
func (l *Lexeme) Conjugation() int { return l.conjugation }

// Deponent reports whether the verb takes passive endings with active meaning.
func (l *Lexeme) Deponent() bool { return l.deponent }

// IVariant reports a third-conjugation -io verb.
func (l *Lexeme) IVariant() bool { return l.iVariant }

// PrincipalPart returns principal part n (1 to 4). Parts 2 to 4 are bare
// stems; Absent marks one that does not exist.
func (l *Lexeme) PrincipalPart(n int) string {
	if n < 1 || n > 4 {
		return Absent
	}
	return l.pp[n-1]
}

// Irregular returns the override stored for code, if any.
func (l *Lexeme) Irregular(code Code) (string, bool) {
	f, ok := l.irregulars[code]
	return f, ok
}

// Irregulars returns a copy of the override table.
func (l *Lexeme) Irregulars() map[Code]string {
	out := make(map[Code]string, len(l.irregulars))
	for k, v := range l.irregulars {
		out[k] = v
	}
	return out
}

// String returns the lemma form.
func (l *Lexeme) String() string { return l.pp[0] }
