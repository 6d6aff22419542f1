package conjugator

import "regexp"

// External tags come from LatinWordNet and have ten characters in nine
// fields:
//
//	[pos][person/degree][number][tense][mood][voice][gender][case][class+variant]
//
// '-' stands for "not applicable" in every field.
const placeholder = '-'

// tagRe is the full tag grammar. Each capture group is one field.
var tagRe = regexp.MustCompile(`^([nvarp])([123pcs-])([sp-])([pifrlt-])([ismnpgdu-])([apd-])([fmn-])([ngdabv-])([12345-])([i-])$`)

// Per-field letter → digit tables. A letter missing from a table maps to '0'.
var (
	posDigits = map[byte]byte{
		'n': '1', // noun
		'v': '2', // verb
		'a': '3', // adjective
		'r': '4', // adverb
		'p': '5', // pronoun
	}

	// personDigits covers the verb reading of the person/degree field.
	personDigits = map[byte]byte{'1': '1', '2': '2', '3': '3'}

	// degreeDigits covers the adjective reading of the person/degree field.
	degreeDigits = map[byte]byte{'p': '1', 'c': '2', 's': '3'}

	numberDigits = map[byte]byte{'s': '1', 'p': '2'}

	tenseDigits = map[byte]byte{
		'p': '1', // present
		'i': '2', // imperfect
		'f': '3', // future
		'r': '4', // perfect
		'l': '5', // pluperfect
		't': '6', // future perfect
	}

	moodDigits = map[byte]byte{
		'i': '1', // indicative
		's': '2', // subjunctive
		'm': '3', // imperative
		'n': '4', // infinitive
		'p': '5', // participle
		'g': '6', // gerund, genitive
		'd': '6', // gerund, other cases
		'u': '7', // supine
	}

	// Deponent forms have active meaning and are keyed as active; the
	// Lexeme's deponent flag selects passive endings.
	voiceDigits = map[byte]byte{'a': '1', 'p': '2', 'd': '1'}

	genderDigits = map[byte]byte{'f': '1', 'm': '2', 'n': '3'}

	caseDigits = map[byte]byte{
		'n': '1', // nominative
		'g': '2', // genitive
		'd': '3', // dative
		'a': '4', // accusative
		'b': '5', // ablative
		'v': '6', // vocative
	}
)

// Tag letters with special handling during translation.
const (
	tagVerb           = 'v'
	tagAdjective      = 'a'
	tagMoodImperative = 'm'
	tagMoodInfinitive = 'n'
	tagMoodParticiple = 'p'
	tagMoodGerundGen  = 'g'
	tagMoodGerundCase = 'd'
)

// lookupDigit maps letter through table, defaulting to '0'.
func lookupDigit(table map[byte]byte, letter byte) byte {
	if d, ok := table[letter]; ok {
		return d
	}
	return '0'
}
