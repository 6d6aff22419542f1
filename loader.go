package conjugator

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

//go:embed data/endings.yaml
var defaultEndingsYAML []byte

// endingsDoc is the on-disk shape of an ending table. Keys are digits of
// the internal code: conjugation, then mood, then voice and tense (finite
// and non-finite moods) or case (verbal nouns).
type endingsDoc struct {
	Conjugations map[string]conjugationDoc `yaml:"conjugations" json:"conjugations"`
}

type conjugationDoc struct {
	Finite     map[string]map[string]map[string][]string `yaml:"finite" json:"finite"`
	NonFinite  map[string]map[string]map[string]string   `yaml:"nonfinite" json:"nonfinite"`
	VerbalNoun map[string]map[string]string              `yaml:"verbalnoun" json:"verbalnoun"`
}

// DefaultEndings parses the ending table compiled into the binary.
func DefaultEndings() (*Endings, error) {
	return ParseEndingsYAML(defaultEndingsYAML)
}

// LoadEndings reads an ending table from path. Files ending in .json are
// decoded as JSON, everything else as YAML.
func LoadEndings(path string) (*Endings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseEndingsJSON(data)
	}
	return ParseEndingsYAML(data)
}

// ParseEndingsYAML builds an ending table from a YAML document.
func ParseEndingsYAML(data []byte) (*Endings, error) {
	var doc endingsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode endings yaml: %w", err)
	}
	return doc.build()
}

// ParseEndingsJSON builds an ending table from a JSON document.
func ParseEndingsJSON(data []byte) (*Endings, error) {
	var doc endingsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode endings json: %w", err)
	}
	return doc.build()
}

func (d endingsDoc) build() (*Endings, error) {
	e := &Endings{sets: make(map[int]map[Mood]endingSet)}
	for conjKey, cd := range d.Conjugations {
		conj, err := parseKey(conjKey, 1, 4)
		if err != nil {
			return nil, fmt.Errorf("endings: conjugation: %w", err)
		}
		moods, err := cd.build()
		if err != nil {
			return nil, fmt.Errorf("endings: conjugation %d: %w", conj, err)
		}
		e.sets[conj] = moods
	}
	if len(e.sets) == 0 {
		return nil, fmt.Errorf("endings: no conjugations")
	}
	return e, nil
}

func (cd conjugationDoc) build() (map[Mood]endingSet, error) {
	out := make(map[Mood]endingSet)

	for moodKey, voices := range cd.Finite {
		mood, err := parseMood(moodKey, Mood.Finite)
		if err != nil {
			return nil, fmt.Errorf("finite: %w", err)
		}
		set := make(personNumberSet)
		for voiceKey, tenses := range voices {
			voice, err := parseKey(voiceKey, int(VoiceActive), int(VoicePassive))
			if err != nil {
				return nil, fmt.Errorf("mood %d: voice: %w", mood, err)
			}
			set[Voice(voice)] = make(map[Tense][]string)
			for tenseKey, list := range tenses {
				tense, err := parseKey(tenseKey, int(TensePresent), int(TenseFuturePerfect))
				if err != nil {
					return nil, fmt.Errorf("mood %d voice %d: tense: %w", mood, voice, err)
				}
				if len(list) != 6 {
					return nil, fmt.Errorf("mood %d voice %d tense %d: %d endings, want 6",
						mood, voice, tense, len(list))
				}
				set[Voice(voice)][Tense(tense)] = list
			}
		}
		out[mood] = set
	}

	for moodKey, voices := range cd.NonFinite {
		mood, err := parseMood(moodKey, Mood.NonFinite)
		if err != nil {
			return nil, fmt.Errorf("nonfinite: %w", err)
		}
		set := make(tenseVoiceSet)
		for voiceKey, tenses := range voices {
			voice, err := parseKey(voiceKey, int(VoiceActive), int(VoicePassive))
			if err != nil {
				return nil, fmt.Errorf("mood %d: voice: %w", mood, err)
			}
			set[Voice(voice)] = make(map[Tense]string)
			for tenseKey, ending := range tenses {
				tense, err := parseKey(tenseKey, int(TensePresent), int(TenseFuturePerfect))
				if err != nil {
					return nil, fmt.Errorf("mood %d voice %d: tense: %w", mood, voice, err)
				}
				set[Voice(voice)][Tense(tense)] = ending
			}
		}
		out[mood] = set
	}

	for moodKey, cases := range cd.VerbalNoun {
		mood, err := parseMood(moodKey, Mood.VerbalNoun)
		if err != nil {
			return nil, fmt.Errorf("verbalnoun: %w", err)
		}
		set := make(caseSet)
		for caseKey, ending := range cases {
			c, err := parseKey(caseKey, int(CaseNominative), int(CaseVocative))
			if err != nil {
				return nil, fmt.Errorf("mood %d: case: %w", mood, err)
			}
			set[Case(c)] = ending
		}
		out[mood] = set
	}
	return out, nil
}

// parseKey parses a digit key and checks it against [lo, hi].
func parseKey(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("key %q: %w", s, err)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("key %q out of range %d-%d", s, lo, hi)
	}
	return n, nil
}

func parseMood(s string, inGroup func(Mood) bool) (Mood, error) {
	n, err := parseKey(s, int(MoodIndicative), int(MoodSupine))
	if err != nil {
		return 0, fmt.Errorf("mood: %w", err)
	}
	m := Mood(n)
	if !inGroup(m) {
		return 0, fmt.Errorf("mood %d does not belong to this group", m)
	}
	return m, nil
}
