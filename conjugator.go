// Package conjugator synthesizes inflected Latin verb forms from a
// 9-digit morphological code, the verb's principal parts and a table of
// regular endings, with per-verb irregular forms taking priority.
//
// Irregular forms arrive tagged in the LatinWordNet format and are
// translated to internal codes when the Lexeme is built. Analysis
// (form to features) is not supported.
package conjugator

// Conjugator holds the ending table and conjugates lexemes against it.
// It is safe for concurrent use.
type Conjugator struct {
	endings *Endings
}

// New returns a Conjugator backed by the built-in ending table.
func New() (*Conjugator, error) {
	e, err := DefaultEndings()
	if err != nil {
		return nil, err
	}
	return &Conjugator{endings: e}, nil
}

// NewWithEndings returns a Conjugator backed by e.
func NewWithEndings(e *Endings) *Conjugator {
	return &Conjugator{endings: e}
}

// Endings returns the ending table in use.
func (c *Conjugator) Endings() *Endings {
	return c.endings
}
