package conjugator

// Tag is an external LatinWordNet tag split into its raw field
// characters. No interpretation happens here; see Code.
type Tag struct {
	POS          byte
	PersonDegree byte
	Number       byte
	Tense        byte
	Mood         byte
	Voice        byte
	Gender       byte
	Case         byte
	Class        byte
	Variant      byte
}

// DecodeTag splits s into a Tag, failing with *InvalidTagError when s does
// not match the tag grammar.
func DecodeTag(s string) (Tag, error) {
	m := tagRe.FindStringSubmatch(s)
	if m == nil {
		return Tag{}, &InvalidTagError{Tag: s}
	}
	return Tag{
		POS:          m[1][0],
		PersonDegree: m[2][0],
		Number:       m[3][0],
		Tense:        m[4][0],
		Mood:         m[5][0],
		Voice:        m[6][0],
		Gender:       m[7][0],
		Case:         m[8][0],
		Class:        m[9][0],
		Variant:      m[10][0],
	}, nil
}

// String reassembles the tag.
func (t Tag) String() string {
	return string([]byte{
		t.POS, t.PersonDegree, t.Number, t.Tense, t.Mood,
		t.Voice, t.Gender, t.Case, t.Class, t.Variant,
	})
}

func (t Tag) gerund() bool {
	return t.Mood == tagMoodGerundGen || t.Mood == tagMoodGerundCase
}

// Code applies the translation rules in order:
//
//  1. pos, gender and case map directly, except that a genitive gerund is
//     forced to genitive case and masculine gender;
//  2. gerunds drop person, tense and voice and are singular;
//  3. otherwise tense, voice and number map directly and only verbs keep a
//     person; participles are singular, infinitives have no number and
//     imperatives are second person;
//  4. mood maps directly; degree survives only on adjectives.
func (t Tag) Code() Code {
	var out [CodeLen]byte

	out[fieldClass] = lookupDigit(posDigits, t.POS)
	out[fieldGender] = lookupDigit(genderDigits, t.Gender)
	out[fieldCase] = lookupDigit(caseDigits, t.Case)
	if t.Mood == tagMoodGerundGen {
		out[fieldCase] = '0' + byte(CaseGenitive)
		out[fieldGender] = '0' + byte(GenderMasculine)
	}

	if t.gerund() {
		out[fieldPerson] = '0'
		out[fieldNumber] = '0' + byte(NumberSingular)
		out[fieldTense] = '0'
		out[fieldVoice] = '0'
	} else {
		out[fieldTense] = lookupDigit(tenseDigits, t.Tense)
		out[fieldVoice] = lookupDigit(voiceDigits, t.Voice)
		out[fieldPerson] = '0'
		out[fieldNumber] = lookupDigit(numberDigits, t.Number)
		switch t.Mood {
		case tagMoodParticiple:
			out[fieldNumber] = '0' + byte(NumberSingular)
		case tagMoodInfinitive:
			out[fieldNumber] = '0'
		case tagMoodImperative:
			out[fieldPerson] = '0' + byte(PersonSecond)
		default:
			if t.POS == tagVerb {
				out[fieldPerson] = lookupDigit(personDigits, t.PersonDegree)
			}
		}
	}

	out[fieldMood] = lookupDigit(moodDigits, t.Mood)
	out[fieldDegree] = '0'
	if t.POS == tagAdjective {
		out[fieldDegree] = lookupDigit(degreeDigits, t.PersonDegree)
	}
	return Code(out[:])
}

// Conflicts lists the fields whose tag value was discarded by an
// override. An empty result means the translation lost nothing.
func (t Tag) Conflicts() []string {
	var out []string
	set := func(b byte) bool { return b != placeholder }

	if t.Mood == tagMoodGerundGen {
		if set(t.Case) && t.Case != 'g' {
			out = append(out, "case")
		}
		if set(t.Gender) && t.Gender != 'm' {
			out = append(out, "gender")
		}
	}
	switch {
	case t.gerund():
		if set(t.PersonDegree) {
			out = append(out, "person")
		}
		if t.Number == 'p' {
			out = append(out, "number")
		}
		if set(t.Tense) {
			out = append(out, "tense")
		}
		if set(t.Voice) {
			out = append(out, "voice")
		}
	case t.Mood == tagMoodParticiple:
		if t.Number == 'p' {
			out = append(out, "number")
		}
	case t.Mood == tagMoodInfinitive:
		if set(t.Number) {
			out = append(out, "number")
		}
	case t.Mood == tagMoodImperative:
		if set(t.PersonDegree) && t.PersonDegree != '2' {
			out = append(out, "person")
		}
	}
	return out
}

// Translate converts an external tag into an internal Code.
func Translate(tag string) (Code, error) {
	t, err := DecodeTag(tag)
	if err != nil {
		return "", err
	}
	return t.Code(), nil
}
