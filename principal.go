package conjugator

import "fmt"

// PrincipalParts is the dictionary entry of a verb in conjugated form.
type PrincipalParts struct {
	Lemma             string `json:"lemma"`
	PresentInfinitive string `json:"present_infinitive"`
	Perfect           string `json:"perfect"`
	// Supine is empty for deponent verbs.
	Supine   string `json:"supine,omitempty"`
	Deponent bool   `json:"deponent"`
}

// PrincipalParts conjugates the dictionary entry of l. Deponent verbs list
// the perfect passive and no supine.
func (c *Conjugator) PrincipalParts(l *Lexeme) (PrincipalParts, error) {
	pp := PrincipalParts{Lemma: l.Lemma(), Deponent: l.Deponent()}
	var err error
	if pp.PresentInfinitive, err = c.Conjugate(l, PresentInfinitiveCode); err != nil {
		return pp, err
	}
	if l.Deponent() {
		pp.Perfect, err = c.Conjugate(l, PerfectPassiveCode)
		return pp, err
	}
	if pp.Perfect, err = c.Conjugate(l, PerfectActiveCode); err != nil {
		return pp, err
	}
	pp.Supine, err = c.Conjugate(l, SupineCode)
	return pp, err
}

// String formats the dictionary line, e.g.
// "amo (present infinitive amare, perfect active amavi, supine amatum)".
func (pp PrincipalParts) String() string {
	if pp.Deponent {
		return fmt.Sprintf("%s (present infinitive %s, perfect %s)",
			pp.Lemma, pp.PresentInfinitive, pp.Perfect)
	}
	return fmt.Sprintf("%s (present infinitive %s, perfect active %s, supine %s)",
		pp.Lemma, pp.PresentInfinitive, pp.Perfect, pp.Supine)
}
