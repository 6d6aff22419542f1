package conjugator

// stemPart picks the principal part (2, 3 or 4) that carries the ending
// for the given mood, tense and voice. The voice passed in is already the
// effective voice, so deponent verbs arrive as passive.
func stemPart(mood Mood, tense Tense, voice Voice) int {
	switch mood {
	case MoodIndicative, MoodSubjunctive:
		if tense.PerfectSystem() {
			if voice == VoiceActive {
				return 3
			}
			return 4
		}
	case MoodInfinitive:
		if tense != TensePresent {
			if tense == TensePerfect && voice == VoiceActive {
				return 3
			}
			return 4
		}
	case MoodParticiple:
		if (tense == TenseFuture && voice == VoiceActive) || tense == TensePerfect {
			return 4
		}
	case MoodSupine:
		return 4
	}
	return 2
}

// stem returns the stem l uses for code.
func (l *Lexeme) stem(code Code) string {
	voice := effectiveVoice(code.Voice(), l.deponent)
	return l.PrincipalPart(stemPart(code.Mood(), code.Tense(), voice))
}
