package latinwordnet

import "github.com/cours-de-latin/conjugator"

// lemmaPage is the envelope of /api/lemmas/.
type lemmaPage struct {
	Count   int                 `json:"count"`
	Results []conjugator.Record `json:"results"`
}

// indexPage is the envelope of /api/index/v/.
type indexPage struct {
	Count   int          `json:"count"`
	Results []indexEntry `json:"results"`
}

type indexEntry struct {
	Lemma string `json:"lemma"`
	URI   string `json:"uri"`
}
