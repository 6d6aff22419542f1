package conjugator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Code
	}{
		{"lemma form", "v1spia--1-", LemmaCode},
		{"perfect active 3sg", "v3sria--1-", "200314110"},
		{"present passive 1pl subjunctive", "v1ppsp--3-", "200121220"},
		{"present infinitive", "v--pna--1-", PresentInfinitiveCode},
		{"participle keeps gender and case", "v-sppamn1-", "221011150"},
		{"plural participle folds to singular", "v-pppafa1-", "214011150"},
		{"imperative forced to 2nd person", "v3sfma--1-", "200213130"},
		{"genitive gerund", "v-s-gand1-", "222010060"},
		{"other-case gerund keeps case", "v---d--b1-", "205010060"},
		{"deponent voice is active", "v1spid--1-", LemmaCode},
		{"noun has no person", "n-s---fn1-", "111010000"},
		{"adjective degree", "acs---mn1-", "321010002"},
		{"adverb drops degree", "rs--------", "400000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid(), "translated code %s must satisfy the code alphabet", got)
		})
	}
}

func TestTranslateInvalid(t *testing.T) {
	for _, tag := range []string{
		"",
		"v1spia--1",
		"v1spia--1--",
		"x1spia--1-",
		"v4spia--1-",
		"v1xpia--1-",
		"v1spxa--1-",
		"v1spia--6-",
		"v1spia--1x",
		"V1SPIA--1-",
	} {
		_, err := Translate(tag)
		require.Error(t, err, "tag %q", tag)

		var tagErr *InvalidTagError
		require.True(t, errors.As(err, &tagErr), "tag %q: %v", tag, err)
		assert.Equal(t, tag, tagErr.Tag)
		assert.ErrorIs(t, err, ErrInvalidTag)
	}
}

func TestTranslateGerundAlwaysGenitiveMasculine(t *testing.T) {
	for _, gender := range "fmn-" {
		for _, c := range "ngdabv-" {
			tag := "v-s-ga" + string(gender) + string(c) + "1-"
			code, err := Translate(tag)
			require.NoError(t, err, tag)
			assert.Equal(t, CaseGenitive, code.Case(), tag)
			assert.Equal(t, GenderMasculine, code.Gender(), tag)
			assert.Equal(t, MoodGerund, code.Mood(), tag)
		}
	}
}

func TestTranslateDeterministicAndTotal(t *testing.T) {
	for _, person := range "123-" {
		for _, number := range "sp-" {
			for _, tense := range "pifrlt-" {
				for _, mood := range "ismnpgdu-" {
					for _, voice := range "apd-" {
						tag := "v" + string(person) + string(number) + string(tense) +
							string(mood) + string(voice) + "--1-"
						first, err := Translate(tag)
						require.NoError(t, err, tag)
						second, err := Translate(tag)
						require.NoError(t, err, tag)
						require.Equal(t, first, second, tag)
						require.Len(t, string(first), CodeLen, tag)
						require.True(t, first.Valid(), tag)
						require.Equal(t, ClassVerb, first.Class(), tag)
					}
				}
			}
		}
	}
}

func TestTranslateRoundTripFeatures(t *testing.T) {
	code, err := Translate("v1spia--1-")
	require.NoError(t, err)

	f := code.Features()
	assert.Equal(t, ClassVerb, f.Class)
	assert.Equal(t, MoodIndicative, f.Mood)
	assert.Equal(t, VoiceActive, f.Voice)
	assert.Equal(t, TensePresent, f.Tense)
	assert.Equal(t, PersonFirst, f.Person)
	assert.Equal(t, NumberSingular, f.Number)
	assert.Equal(t, 1, code.PersonNumber())
	assert.Equal(t, code, f.Code())
}

func TestTagConflicts(t *testing.T) {
	tests := []struct {
		tag  string
		want []string
	}{
		{"v1spia--1-", nil},
		{"v-s-gand1-", []string{"case", "gender", "voice"}},
		{"v-s-g-mg1-", nil},
		{"v1pfda--1-", []string{"person", "number", "tense", "voice"}},
		{"v-pppamn1-", []string{"number"}},
		{"v-spna--1-", []string{"number"}},
		{"v3sfma--1-", []string{"person"}},
		{"v2sfma--1-", nil},
	}
	for _, tt := range tests {
		tag, err := DecodeTag(tt.tag)
		require.NoError(t, err, tt.tag)
		assert.Equal(t, tt.want, tag.Conflicts(), tt.tag)
		assert.Equal(t, tt.tag, tag.String())
	}
}
