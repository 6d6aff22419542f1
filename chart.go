package conjugator

// ChartRow is one labelled row of a conjugation chart.
type ChartRow struct {
	Label string   `json:"label"`
	Codes []Code   `json:"codes"`
	Forms []string `json:"forms"`
}

// Chart is the full conjugation of a verb in three grids. Absent forms
// hold NoSuchForm.
type Chart struct {
	Lemma       string     `json:"lemma"`
	Finite      []ChartRow `json:"finite"`
	NonFinite   []ChartRow `json:"nonfinite"`
	VerbalNouns []ChartRow `json:"verbal_nouns"`
}

// Column headers for the three grids.
var (
	FiniteColumns = []string{
		"1st singular", "2nd singular", "3rd singular",
		"1st plural", "2nd plural", "3rd plural",
	}
	NonFiniteColumns = []string{
		"present active", "future active", "perfect active",
		"present passive", "future passive", "perfect passive",
	}
	VerbalNounColumns = []string{"genitive", "dative", "accusative", "ablative"}
)

var (
	chartVoices     = []Voice{VoiceActive, VoicePassive}
	chartPersons    = []Person{PersonFirst, PersonSecond, PersonThird}
	chartNumbers    = []Number{NumberSingular, NumberPlural}
	chartNonFinite  = []Tense{TensePresent, TenseFuture, TensePerfect}
	chartImperative = []Tense{TensePresent, TenseFuture}
	chartCases      = []Case{CaseGenitive, CaseDative, CaseAccusative, CaseAblative}
)

// Chart conjugates every form of l that the chart layout shows.
func (c *Conjugator) Chart(l *Lexeme) (*Chart, error) {
	ch := &Chart{Lemma: l.Lemma()}

	for _, mood := range []Mood{MoodIndicative, MoodSubjunctive} {
		for _, voice := range chartVoices {
			for tense := TensePresent; tense <= TenseFuturePerfect; tense++ {
				if mood == MoodSubjunctive && (tense == TenseFuture || tense == TenseFuturePerfect) {
					continue
				}
				row, err := c.finiteRow(l, mood, tense, voice)
				if err != nil {
					return nil, err
				}
				ch.Finite = append(ch.Finite, row)
			}
		}
	}
	for _, voice := range chartVoices {
		for _, tense := range chartImperative {
			row, err := c.finiteRow(l, MoodImperative, tense, voice)
			if err != nil {
				return nil, err
			}
			ch.Finite = append(ch.Finite, row)
		}
	}

	for _, mood := range []Mood{MoodInfinitive, MoodParticiple} {
		row := ChartRow{Label: mood.String()}
		for _, voice := range chartVoices {
			for _, tense := range chartNonFinite {
				if err := c.appendCell(&row, l, VerbFeatures(mood, tense, voice, 0, 0, 0)); err != nil {
					return nil, err
				}
			}
		}
		ch.NonFinite = append(ch.NonFinite, row)
	}

	for _, mood := range []Mood{MoodGerund, MoodSupine} {
		row := ChartRow{Label: mood.String()}
		for _, gc := range chartCases {
			if err := c.appendCell(&row, l, VerbFeatures(mood, 0, 0, 0, 0, gc)); err != nil {
				return nil, err
			}
		}
		ch.VerbalNouns = append(ch.VerbalNouns, row)
	}
	return ch, nil
}

func (c *Conjugator) finiteRow(l *Lexeme, mood Mood, tense Tense, voice Voice) (ChartRow, error) {
	row := ChartRow{Label: Features{Tense: tense, Voice: voice, Mood: mood}.Describe()}
	for _, number := range chartNumbers {
		for _, person := range chartPersons {
			if err := c.appendCell(&row, l, VerbFeatures(mood, tense, voice, person, number, 0)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func (c *Conjugator) appendCell(row *ChartRow, l *Lexeme, f Features) error {
	code := f.Code()
	form, err := c.Conjugate(l, code)
	if err != nil {
		return err
	}
	row.Codes = append(row.Codes, code)
	row.Forms = append(row.Forms, form)
	return nil
}
