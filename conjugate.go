package conjugator

// Conjugate returns the surface form of l for code.
//
// The lemma code always yields the first principal part. Otherwise an
// irregular override wins; failing that the form is stem + ending. When
// the stem or the ending does not exist the result is NoSuchForm and the
// error is nil.
func (c *Conjugator) Conjugate(l *Lexeme, code Code) (string, error) {
	if _, err := ParseCode(string(code)); err != nil {
		return "", err
	}
	if code.Class() != ClassVerb {
		return "", &NotAVerbError{Code: code}
	}
	if code == LemmaCode {
		return l.Lemma(), nil
	}
	if form, ok := l.Irregular(code); ok {
		return form, nil
	}

	stem := l.stem(code)
	ending, ok := c.endings.Lookup(l.conjugation, code, l.deponent)
	if !ok || stem == Absent || stem == "" {
		return NoSuchForm, nil
	}
	return stem + ending, nil
}

// ConjugateFeatures encodes f and conjugates it.
func (c *Conjugator) ConjugateFeatures(l *Lexeme, f Features) (string, error) {
	return c.Conjugate(l, f.Code())
}
