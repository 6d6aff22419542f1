// Package lemmaindex maps dictionary forms to LatinWordNet URIs.
//
// The index is persisted as a two-column CSV file (lemma,uri) and kept in
// memory behind a read/write lock so it can be reloaded while serving.
package lemmaindex

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cours-de-latin/conjugator"
)

// ErrNotFound is returned by Lookup for a lemma missing from the index.
var ErrNotFound = errors.New("verb not found in index")

var header = []string{"lemma", "uri"}

// Entry is one row of the index.
type Entry struct {
	Lemma string `json:"lemma"`
	URI   string `json:"uri"`
}

// Index is a thread-safe lemma → URI map. Keys are normalized with
// conjugator.NormalizeKey, so "Amō" and "amo" find the same entry.
type Index struct {
	sync.RWMutex
	byKey   map[string]string
	entries []Entry
}

// New builds an index from entries. Later entries win on key collisions.
func New(entries []Entry) *Index {
	idx := &Index{}
	idx.replaceLocked(entries)
	return idx
}

// Load reads a CSV index from path.
func Load(path string) (*Index, error) {
	entries, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(entries), nil
}

// Reload replaces the contents of idx with the file at path. On error
// idx is left unchanged.
func (idx *Index) Reload(path string) error {
	entries, err := ReadFile(path)
	if err != nil {
		return err
	}
	idx.Replace(entries)
	return nil
}

// Replace swaps the whole index.
func (idx *Index) Replace(entries []Entry) {
	idx.Lock()
	defer idx.Unlock()
	idx.replaceLocked(entries)
}

func (idx *Index) replaceLocked(entries []Entry) {
	idx.byKey = make(map[string]string, len(entries))
	idx.entries = make([]Entry, 0, len(entries))
	for _, e := range entries {
		key := conjugator.NormalizeKey(e.Lemma)
		if key == "" || e.URI == "" {
			continue
		}
		idx.byKey[key] = e.URI
		idx.entries = append(idx.entries, e)
	}
}

// Lookup returns the URI for lemma.
func (idx *Index) Lookup(lemma string) (string, error) {
	idx.RLock()
	defer idx.RUnlock()
	uri, ok := idx.byKey[conjugator.NormalizeKey(lemma)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, lemma)
	}
	return uri, nil
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int {
	idx.RLock()
	defer idx.RUnlock()
	return len(idx.byKey)
}

// Entries returns a copy of the rows, sorted by lemma.
func (idx *Index) Entries() []Entry {
	idx.RLock()
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	idx.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Lemma < out[j].Lemma })
	return out
}

// ReadFile parses a CSV index file.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lemmaindex: open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("lemmaindex: %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Read parses CSV rows. The first row must be the lemma,uri header.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !strings.EqualFold(head[0], header[0]) || !strings.EqualFold(head[1], header[1]) {
		return nil, fmt.Errorf("unexpected header %q", head)
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		entries = append(entries, Entry{Lemma: rec[0], URI: rec[1]})
	}
}

// Write emits entries as CSV with the lemma,uri header.
func Write(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Lemma, e.URI}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes entries to path atomically: the file is written next
// to path and renamed over it.
func WriteFile(path string, entries []Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".uri-*.csv")
	if err != nil {
		return fmt.Errorf("lemmaindex: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("lemmaindex: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("lemmaindex: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("lemmaindex: rename: %w", err)
	}
	return nil
}
