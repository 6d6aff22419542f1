package main

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/cours-de-latin/conjugator"
)

// lemmaFetcher retrieves lemma records by URI. *latinwordnet.Client
// satisfies it; tests use a map.
type lemmaFetcher interface {
	FetchLemma(ctx context.Context, uri string) (*conjugator.Record, error)
}

// lexemeCache memoizes built lexemes by URI. Lexemes are immutable, so a
// cached one can serve any number of requests. Concurrent misses for the
// same URI share one fetch.
type lexemeCache struct {
	fetcher lemmaFetcher
	cache   *lru.Cache[string, *conjugator.Lexeme]
	group   singleflight.Group
}

func newLexemeCache(f lemmaFetcher, size int) (*lexemeCache, error) {
	c, err := lru.New[string, *conjugator.Lexeme](size)
	if err != nil {
		return nil, fmt.Errorf("lexeme cache: %w", err)
	}
	return &lexemeCache{fetcher: f, cache: c}, nil
}

// errBadRecord marks a record from the lexical service that could not be
// built into a Lexeme.
var errBadRecord = errors.New("unusable lemma record")

// Get returns the lexeme for uri, fetching and building it on a miss. The
// shared fetch is detached from ctx so that one caller going away does not
// fail the others; each caller still stops waiting when its own ctx ends.
func (c *lexemeCache) Get(ctx context.Context, uri string) (*conjugator.Lexeme, error) {
	if l, ok := c.cache.Get(uri); ok {
		return l, nil
	}

	ch := c.group.DoChan(uri, func() (any, error) {
		rec, err := c.fetcher.FetchLemma(context.WithoutCancel(ctx), uri)
		if err != nil {
			return nil, err
		}
		l, err := conjugator.NewLexeme(*rec)
		if err != nil {
			return nil, fmt.Errorf("%w: build lexeme %s: %w", errBadRecord, uri, err)
		}
		c.cache.Add(uri, l)
		return l, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*conjugator.Lexeme), nil
	}
}

// Len returns the number of cached lexemes.
func (c *lexemeCache) Len() int {
	return c.cache.Len()
}
