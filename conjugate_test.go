package conjugator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConjugator(t *testing.T) *Conjugator {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	return c
}

func mustLexeme(t *testing.T, rec Record) *Lexeme {
	t.Helper()
	l, err := NewLexeme(rec)
	require.NoError(t, err)
	return l
}

var (
	amoRecord = Record{
		URI:            "a2233",
		Lemma:          "amo",
		Morpho:         "v1spia--1-",
		PrincipalParts: "am amav amat",
	}
	moneoRecord = Record{
		URI:            "m2491",
		Lemma:          "moneo",
		Morpho:         "v1spia--2-",
		PrincipalParts: "mon monu monit",
	}
	regoRecord = Record{
		URI:            "r0817",
		Lemma:          "rego",
		Morpho:         "v1spia--3-",
		PrincipalParts: "reg rex rect",
	}
	audioRecord = Record{
		URI:            "a3104",
		Lemma:          "audio",
		Morpho:         "v1spia--4-",
		PrincipalParts: "aud audiv audit",
	}
	hortorRecord = Record{
		URI:            "h0822",
		Lemma:          "hortor",
		Morpho:         "v1spid--1-",
		PrincipalParts: "hort - hortat",
	}
)

func TestConjugateFirstConjugation(t *testing.T) {
	c := newTestConjugator(t)
	amo := mustLexeme(t, amoRecord)

	tests := []struct {
		code Code
		want string
	}{
		{LemmaCode, "amo"},
		{"200211110", "amas"},
		{"200321110", "amant"},
		{"200312110", "amabat"},
		{"200123110", "amabimus"},
		{"200314110", "amavit"},
		{"200225110", "amaveratis"},
		{"200326110", "amaverint"},
		{"200311210", "amatur"},
		{"200314210", "amatus est"},
		{"200121120", "amemus"},
		{"200322120", "amarent"},
		{"200315120", "amavisset"},
		{"200211130", "ama"},
		{"200221130", "amate"},
		{PresentInfinitiveCode, "amare"},
		{"200001240", "amari"},
		{"200004140", "amavisse"},
		{"200003140", "amaturus esse"},
		{"200004240", "amatus esse"},
		{"221011150", "amans"},
		{"221013150", "amaturus"},
		{"221013250", "amandus"},
		{"221014250", "amatus"},
		{"222010060", "amandi"},
		{"225010060", "amando"},
		{SupineCode, "amatum"},
		{"225010070", "amatu"},
	}
	for _, tt := range tests {
		got, err := c.Conjugate(amo, tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.want, got, "Conjugate(amo, %s) [%s]", tt.code, tt.code.Features().Describe())
	}
}

func TestConjugateOtherConjugations(t *testing.T) {
	c := newTestConjugator(t)

	tests := []struct {
		rec  Record
		code Code
		want string
	}{
		{moneoRecord, "200211110", "mones"},
		{moneoRecord, "200121120", "moneamus"},
		{moneoRecord, "200314110", "monuit"},
		{moneoRecord, PresentInfinitiveCode, "monere"},
		{moneoRecord, SupineCode, "monitum"},
		{regoRecord, "200211110", "regis"},
		{regoRecord, "200321110", "regunt"},
		{regoRecord, "200113110", "regam"},
		{regoRecord, "200314110", "rexit"},
		{regoRecord, "200001240", "regi"},
		{regoRecord, "222010060", "regendi"},
		{audioRecord, "200321110", "audiunt"},
		{audioRecord, "200312110", "audiebat"},
		{audioRecord, "200314110", "audivit"},
		{audioRecord, "221011150", "audiens"},
	}
	for _, tt := range tests {
		l := mustLexeme(t, tt.rec)
		got, err := c.Conjugate(l, tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Conjugate(%s, %s)", tt.rec.Lemma, tt.code)
	}
}

func TestConjugateLemmaShortCircuit(t *testing.T) {
	c := newTestConjugator(t)
	rec := amoRecord
	rec.IrregularForms = "v1spia--1-=AMO"
	amo := mustLexeme(t, rec)

	got, err := c.Conjugate(amo, LemmaCode)
	require.NoError(t, err)
	assert.Equal(t, "amo", got)
}

func TestConjugateIrregularWins(t *testing.T) {
	c := newTestConjugator(t)
	rec := amoRecord
	rec.IrregularForms = "v3spia--1-=amatt v3sria--1-=amauit"
	amo := mustLexeme(t, rec)

	got, err := c.Conjugate(amo, "200311110")
	require.NoError(t, err)
	assert.Equal(t, "amatt", got)

	got, err = c.Conjugate(amo, "200314110")
	require.NoError(t, err)
	assert.Equal(t, "amauit", got)

	got, err = c.Conjugate(amo, "200321110")
	require.NoError(t, err)
	assert.Equal(t, "amant", got, "forms without override stay regular")
}

func TestConjugateDeponent(t *testing.T) {
	c := newTestConjugator(t)
	hortor := mustLexeme(t, hortorRecord)
	require.True(t, hortor.Deponent())

	for _, code := range []Code{"200211110", "200211210"} {
		got, err := c.Conjugate(hortor, code)
		require.NoError(t, err)
		assert.Equal(t, "hortaris", got, code)
	}

	got, err := c.Conjugate(hortor, "200314110")
	require.NoError(t, err)
	assert.Equal(t, "hortatus est", got)

	got, err = c.Conjugate(hortor, PresentInfinitiveCode)
	require.NoError(t, err)
	assert.Equal(t, "hortari", got)

	for tense := TensePresent; tense <= TenseFuturePerfect; tense++ {
		active := VerbFeatures(MoodIndicative, tense, VoiceActive, PersonThird, NumberPlural, 0).Code()
		passive := VerbFeatures(MoodIndicative, tense, VoicePassive, PersonThird, NumberPlural, 0).Code()
		a, err := c.Conjugate(hortor, active)
		require.NoError(t, err)
		p, err := c.Conjugate(hortor, passive)
		require.NoError(t, err)
		assert.Equal(t, p, a, "deponent tense %s", tense)
	}
}

func TestConjugateAbsentForms(t *testing.T) {
	c := newTestConjugator(t)
	rec := Record{
		URI:            "f0312",
		Lemma:          "ferio",
		Morpho:         "v1spia--4-",
		PrincipalParts: "fer - -",
	}
	ferio := mustLexeme(t, rec)

	got, err := c.Conjugate(ferio, "200311110")
	require.NoError(t, err)
	assert.Equal(t, "ferit", got)

	for _, code := range []Code{"200314110", "200125110", "200326110", "200114120", "200004140", SupineCode, "200314210"} {
		got, err := c.Conjugate(ferio, code)
		require.NoError(t, err, code)
		assert.Equal(t, NoSuchForm, got, code)
	}

	amo := mustLexeme(t, amoRecord)
	for _, code := range []Code{
		"200111130", // 1st singular imperative
		"200123120", // future subjunctive
		"221014150", // perfect active participle
		"221011250", // present passive participle
		"222010070", // genitive supine
	} {
		got, err := c.Conjugate(amo, code)
		require.NoError(t, err, code)
		assert.Equal(t, NoSuchForm, got, code)
	}
}

func TestConjugateErrors(t *testing.T) {
	c := newTestConjugator(t)
	amo := mustLexeme(t, amoRecord)

	_, err := c.Conjugate(amo, "111010000")
	var notVerb *NotAVerbError
	require.True(t, errors.As(err, &notVerb), "%v", err)
	assert.Equal(t, Code("111010000"), notVerb.Code)
	assert.ErrorIs(t, err, ErrNotAVerb)

	for _, code := range []Code{"", "2001111", "2001111100", "20011111x", "200111180", "900000000"} {
		_, err := c.Conjugate(amo, code)
		assert.ErrorIs(t, err, ErrInvalidCode, code)
	}
}

func TestConjugateFeatures(t *testing.T) {
	c := newTestConjugator(t)
	amo := mustLexeme(t, amoRecord)

	got, err := c.ConjugateFeatures(amo, VerbFeatures(MoodSubjunctive, TenseImperfect, VoicePassive, PersonSecond, NumberPlural, 0))
	require.NoError(t, err)
	assert.Equal(t, "amaremini", got)
}

func TestStemPart(t *testing.T) {
	tests := []struct {
		mood  Mood
		tense Tense
		voice Voice
		want  int
	}{
		{MoodIndicative, TensePresent, VoiceActive, 2},
		{MoodIndicative, TenseFuture, VoicePassive, 2},
		{MoodIndicative, TensePerfect, VoiceActive, 3},
		{MoodIndicative, TensePluperfect, VoicePassive, 4},
		{MoodSubjunctive, TensePerfect, VoiceActive, 3},
		{MoodSubjunctive, TensePluperfect, VoicePassive, 4},
		{MoodImperative, TenseFuture, VoiceActive, 2},
		{MoodInfinitive, TensePresent, VoicePassive, 2},
		{MoodInfinitive, TenseFuture, VoiceActive, 4},
		{MoodInfinitive, TensePerfect, VoiceActive, 3},
		{MoodInfinitive, TensePerfect, VoicePassive, 4},
		{MoodParticiple, TensePresent, VoiceActive, 2},
		{MoodParticiple, TenseFuture, VoiceActive, 4},
		{MoodParticiple, TenseFuture, VoicePassive, 2},
		{MoodParticiple, TensePerfect, VoicePassive, 4},
		{MoodGerund, TenseNone, VoiceNone, 2},
		{MoodSupine, TenseNone, VoiceNone, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stemPart(tt.mood, tt.tense, tt.voice),
			"stemPart(%s, %s, %s)", tt.mood, tt.tense, tt.voice)
	}
}
