package conjugator

import (
	"fmt"
	"strconv"
)

// Code is the 9-digit internal morphological code:
//
//	[class][gender][case][person][number][tense][voice][mood][degree]
//
// A zero digit means the field does not apply.
type Code string

// CodeLen is the fixed length of every Code.
const CodeLen = 9

// Field positions inside a Code.
const (
	fieldClass = iota
	fieldGender
	fieldCase
	fieldPerson
	fieldNumber
	fieldTense
	fieldVoice
	fieldMood
	fieldDegree
)

// fieldMax holds the highest legal digit per field, in Code order.
var fieldMax = [CodeLen]byte{5, 3, 6, 3, 2, 6, 2, 7, 3}

// fieldNames is used in error messages.
var fieldNames = [CodeLen]string{
	"class", "gender", "case", "person", "number", "tense", "voice", "mood", "degree",
}

// Reserved codes.
const (
	// LemmaCode is the 1st singular present active indicative, i.e. the
	// dictionary form. It always resolves to the first principal part.
	LemmaCode Code = "200111110"
	// PresentInfinitiveCode is the present active infinitive.
	PresentInfinitiveCode Code = "200001140"
	// PerfectActiveCode is the 1st singular perfect active indicative.
	PerfectActiveCode Code = "200114110"
	// PerfectPassiveCode is the 1st singular perfect passive indicative,
	// the perfect principal part of deponent verbs.
	PerfectPassiveCode Code = "200114210"
	// SupineCode is the accusative supine.
	SupineCode Code = "224010070"
)

// Class is the part-of-speech digit.
type Class int

const (
	ClassNone Class = iota
	ClassNoun
	ClassVerb
	ClassAdjective
	ClassAdverb
	ClassPronoun
)

// Gender is the gender digit.
type Gender int

const (
	GenderNone Gender = iota
	GenderFeminine
	GenderMasculine
	GenderNeuter
)

// Case is the grammatical case digit.
type Case int

const (
	CaseNone Case = iota
	CaseNominative
	CaseGenitive
	CaseDative
	CaseAccusative
	CaseAblative
	CaseVocative
)

// Person is the grammatical person digit.
type Person int

const (
	PersonNone Person = iota
	PersonFirst
	PersonSecond
	PersonThird
)

// Number is the grammatical number digit.
type Number int

const (
	NumberNone Number = iota
	NumberSingular
	NumberPlural
)

// Tense is the tense digit. Tenses above TenseFuture belong to the
// perfect system.
type Tense int

const (
	TenseNone Tense = iota
	TensePresent
	TenseImperfect
	TenseFuture
	TensePerfect
	TensePluperfect
	TenseFuturePerfect
)

// PerfectSystem reports whether t is built on a perfect stem.
func (t Tense) PerfectSystem() bool { return t > TenseFuture }

// Voice is the voice digit. Deponent verbs are carried by the Lexeme,
// not by the code.
type Voice int

const (
	VoiceNone Voice = iota
	VoiceActive
	VoicePassive
)

// Mood is the mood digit. Participles, infinitives, gerunds and supines
// are moods in this scheme.
type Mood int

const (
	MoodNone Mood = iota
	MoodIndicative
	MoodSubjunctive
	MoodImperative
	MoodInfinitive
	MoodParticiple
	MoodGerund
	MoodSupine
)

// Finite reports whether forms of m are indexed by person and number.
func (m Mood) Finite() bool { return m >= MoodIndicative && m <= MoodImperative }

// NonFinite reports whether forms of m are indexed by tense and voice only.
func (m Mood) NonFinite() bool { return m == MoodInfinitive || m == MoodParticiple }

// VerbalNoun reports whether forms of m are indexed by case only.
func (m Mood) VerbalNoun() bool { return m == MoodGerund || m == MoodSupine }

// Degree is the adjective degree digit.
type Degree int

const (
	DegreeNone Degree = iota
	DegreePositive
	DegreeComparative
	DegreeSuperlative
)

// ParseCode validates s against the code alphabet.
func ParseCode(s string) (Code, error) {
	if len(s) != CodeLen {
		return "", fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidCode, s, len(s), CodeLen)
	}
	for i := 0; i < CodeLen; i++ {
		ch := s[i]
		if ch < '0' || ch > '0'+fieldMax[i] {
			return "", fmt.Errorf("%w: %q: %s digit %q out of range 0-%d",
				ErrInvalidCode, s, fieldNames[i], ch, fieldMax[i])
		}
	}
	return Code(s), nil
}

// Valid reports whether c satisfies the code alphabet.
func (c Code) Valid() bool {
	_, err := ParseCode(string(c))
	return err == nil
}

func (c Code) digit(field int) int {
	if len(c) != CodeLen {
		return 0
	}
	return int(c[field] - '0')
}

// Class returns the part-of-speech digit.
func (c Code) Class() Class { return Class(c.digit(fieldClass)) }

// Gender returns the gender digit.
func (c Code) Gender() Gender { return Gender(c.digit(fieldGender)) }

// Case returns the case digit.
func (c Code) Case() Case { return Case(c.digit(fieldCase)) }

// Person returns the person digit.
func (c Code) Person() Person { return Person(c.digit(fieldPerson)) }

// Number returns the number digit.
func (c Code) Number() Number { return Number(c.digit(fieldNumber)) }

// Tense returns the tense digit.
func (c Code) Tense() Tense { return Tense(c.digit(fieldTense)) }

// Voice returns the voice digit as written in the code. Deponent verbs
// still take passive endings; see Endings.Lookup.
func (c Code) Voice() Voice { return Voice(c.digit(fieldVoice)) }

// Mood returns the mood digit.
func (c Code) Mood() Mood { return Mood(c.digit(fieldMood)) }

// Degree returns the adjective degree digit.
func (c Code) Degree() Degree { return Degree(c.digit(fieldDegree)) }

// PersonNumber collapses person and number into the 1-6 ordinal
// (sg1, sg2, sg3, pl1, pl2, pl3). It returns 0 when either is unset.
func (c Code) PersonNumber() int {
	p, n := c.Person(), c.Number()
	if p == PersonNone || n == NumberNone {
		return 0
	}
	return int(p) + 3*(int(n)-1)
}

// Features is the decoded form of a Code.
type Features struct {
	Class  Class
	Gender Gender
	Case   Case
	Person Person
	Number Number
	Tense  Tense
	Voice  Voice
	Mood   Mood
	Degree Degree
}

// Features decodes c field by field.
func (c Code) Features() Features {
	return Features{
		Class:  c.Class(),
		Gender: c.Gender(),
		Case:   c.Case(),
		Person: c.Person(),
		Number: c.Number(),
		Tense:  c.Tense(),
		Voice:  c.Voice(),
		Mood:   c.Mood(),
		Degree: c.Degree(),
	}
}

// Code encodes f. The result is not validated; use ParseCode on it when
// the fields come from untrusted input.
func (f Features) Code() Code {
	digits := [CodeLen]int{
		int(f.Class), int(f.Gender), int(f.Case), int(f.Person), int(f.Number),
		int(f.Tense), int(f.Voice), int(f.Mood), int(f.Degree),
	}
	b := make([]byte, 0, CodeLen)
	for _, d := range digits {
		b = strconv.AppendInt(b, int64(d), 10)
	}
	return Code(b)
}

// VerbFeatures fills in the fields that the chart and the server always
// set the same way for a given mood: participles and verbal nouns are
// masculine singular, verbal nouns carry no tense or voice.
func VerbFeatures(mood Mood, tense Tense, voice Voice, person Person, number Number, c Case) Features {
	f := Features{Class: ClassVerb, Mood: mood}
	switch {
	case mood.Finite():
		f.Person, f.Number, f.Tense, f.Voice = person, number, tense, voice
	case mood == MoodInfinitive:
		f.Tense, f.Voice = tense, voice
	case mood == MoodParticiple:
		f.Gender, f.Case, f.Number = GenderMasculine, CaseNominative, NumberSingular
		f.Tense, f.Voice = tense, voice
	case mood.VerbalNoun():
		f.Gender, f.Case, f.Number = GenderMasculine, c, NumberSingular
	}
	return f
}
