package conjugator

import "strings"

var (
	genderNames = map[Gender]string{
		GenderFeminine:  "feminine",
		GenderMasculine: "masculine",
		GenderNeuter:    "neuter",
	}
	caseNames = map[Case]string{
		CaseNominative: "nominative",
		CaseGenitive:   "genitive",
		CaseDative:     "dative",
		CaseAccusative: "accusative",
		CaseAblative:   "ablative",
		CaseVocative:   "vocative",
	}
	personNames = map[Person]string{
		PersonFirst:  "1st person",
		PersonSecond: "2nd person",
		PersonThird:  "3rd person",
	}
	numberNames = map[Number]string{
		NumberSingular: "singular",
		NumberPlural:   "plural",
	}
	tenseNames = map[Tense]string{
		TensePresent:       "present",
		TenseImperfect:     "imperfect",
		TenseFuture:        "future",
		TensePerfect:       "perfect",
		TensePluperfect:    "pluperfect",
		TenseFuturePerfect: "future perfect",
	}
	voiceNames = map[Voice]string{
		VoiceActive:  "active",
		VoicePassive: "passive",
	}
	moodNames = map[Mood]string{
		MoodIndicative:  "indicative",
		MoodSubjunctive: "subjunctive",
		MoodImperative:  "imperative",
		MoodInfinitive:  "infinitive",
		MoodParticiple:  "participle",
		MoodGerund:      "gerund",
		MoodSupine:      "supine",
	}
)

// String returns the English tense name, e.g. "future perfect".
func (t Tense) String() string { return tenseNames[t] }

// String returns "active" or "passive".
func (v Voice) String() string { return voiceNames[v] }

// String returns the English mood name, e.g. "subjunctive".
func (m Mood) String() string { return moodNames[m] }

// String returns the English case name, e.g. "ablative".
func (c Case) String() string { return caseNames[c] }

// String returns "1st person", "2nd person" or "3rd person".
func (p Person) String() string { return personNames[p] }

// String returns "singular" or "plural".
func (n Number) String() string { return numberNames[n] }

// String returns the English gender name.
func (g Gender) String() string { return genderNames[g] }

// Describe returns an English label such as
// "3rd person singular perfect active indicative" or "genitive gerund".
// Participles and verbal nouns omit the agreement fields they always
// carry in charts.
func (f Features) Describe() string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	switch {
	case f.Mood.VerbalNoun():
		add(caseNames[f.Case])
	case f.Mood.Finite():
		add(personNames[f.Person])
		add(numberNames[f.Number])
	case f.Mood == MoodNone:
		add(genderNames[f.Gender])
		add(caseNames[f.Case])
		add(personNames[f.Person])
		add(numberNames[f.Number])
	}
	add(tenseNames[f.Tense])
	add(voiceNames[f.Voice])
	add(moodNames[f.Mood])
	return strings.Join(parts, " ")
}
