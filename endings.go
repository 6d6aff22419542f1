package conjugator

// endingKey carries every coordinate an ending set may need. Each set
// reads only the coordinates relevant to its moods.
type endingKey struct {
	voice        Voice
	tense        Tense
	gramCase     Case
	personNumber int
}

// endingSet is the per-mood leaf of the ending table.
type endingSet interface {
	lookup(k endingKey) (string, bool)
}

// personNumberSet holds finite endings: voice → tense → six endings in
// person-number order.
type personNumberSet map[Voice]map[Tense][]string

func (s personNumberSet) lookup(k endingKey) (string, bool) {
	list := s[k.voice][k.tense]
	if k.personNumber < 1 || k.personNumber > len(list) {
		return "", false
	}
	e := list[k.personNumber-1]
	return e, e != ""
}

// tenseVoiceSet holds infinitive and participle endings.
type tenseVoiceSet map[Voice]map[Tense]string

func (s tenseVoiceSet) lookup(k endingKey) (string, bool) {
	e, ok := s[k.voice][k.tense]
	return e, ok && e != ""
}

// caseSet holds gerund and supine endings.
type caseSet map[Case]string

func (s caseSet) lookup(k endingKey) (string, bool) {
	e, ok := s[k.gramCase]
	return e, ok && e != ""
}

// Endings is the regular ending table, keyed by conjugation and mood.
// An ending includes the thematic vowel: for amo the stem is "am" and the
// 3rd singular imperfect ending is "abat".
//
// Endings is read-only once loaded and safe for concurrent use.
type Endings struct {
	sets map[int]map[Mood]endingSet
}

// Lookup returns the ending for code in conjugation conj. Deponent verbs
// always take passive endings. The boolean is false when the table has no
// such ending.
func (e *Endings) Lookup(conj int, code Code, deponent bool) (string, bool) {
	if e == nil {
		return "", false
	}
	set, ok := e.sets[conj][code.Mood()]
	if !ok {
		return "", false
	}
	return set.lookup(endingKey{
		voice:        effectiveVoice(code.Voice(), deponent),
		tense:        code.Tense(),
		gramCase:     code.Case(),
		personNumber: code.PersonNumber(),
	})
}

// Conjugations lists the conjugation classes present in the table.
func (e *Endings) Conjugations() []int {
	out := make([]int, 0, len(e.sets))
	for c := 1; c <= 4; c++ {
		if _, ok := e.sets[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// effectiveVoice is the voice used for both stem and ending selection.
func effectiveVoice(v Voice, deponent bool) Voice {
	if deponent {
		return VoicePassive
	}
	return v
}
