// Package matcher ranks launcher candidates against a live search query.
package matcher

import (
	"cmp"
	"errors"
	"runtime"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Transliterator returns the phonetic form of a name.
type Transliterator interface {
	Translate(text string) (string, error)
}

// Matcher matches queries against candidate names and their transliterations.
type Matcher struct {
	alphabet Transliterator
	workers  int
}

// New creates a Matcher that transliterates candidates through alphabet.
func New(alphabet Transliterator) *Matcher {
	return &Matcher{
		alphabet: alphabet,
		workers:  runtime.NumCPU(),
	}
}

// Search returns the candidates matching query, best match first.
// At most limit results are returned; a non-positive limit returns all matches.
//
// A candidate whose transliteration fails is still matched on its raw name,
// and the failure is reported in the returned error alongside the results.
func (m *Matcher) Search(query string, candidates []string, limit int) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, nil
	}

	translated, err := m.translateAll(candidates)

	results := make([]domain.SearchResult, 0, len(candidates))
	for i, name := range candidates {
		best, ok := rank(query, name, i)
		if alt := translated[i]; alt != "" && alt != name {
			if r, altOK := rank(query, alt, i); altOK && (!ok || r.Distance < best.Distance) {
				best, ok = r, true
			}
		}
		if !ok {
			continue
		}
		best.Name = name
		results = append(results, best)
	}

	slices.SortStableFunc(results, func(a, b domain.SearchResult) int {
		return cmp.Or(cmp.Compare(a.Distance, b.Distance), cmp.Compare(a.Index, b.Index))
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, err
}

func rank(query, text string, index int) (domain.SearchResult, bool) {
	distance := fuzzy.RankMatchFold(query, text)
	if distance < 0 {
		return domain.SearchResult{}, false
	}
	return domain.SearchResult{MatchedOn: text, Distance: distance, Index: index}, true
}

// translateAll transliterates candidates concurrently. Failed entries stay empty.
func (m *Matcher) translateAll(candidates []string) ([]string, error) {
	out := make([]string, len(candidates))
	errs := make([]error, len(candidates))

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, name := range candidates {
		g.Go(func() error {
			t, err := m.alphabet.Translate(name)
			if err != nil {
				errs[i] = zerr.With(err, "candidate", name)
				return nil
			}
			out[i] = t
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return out, errors.Join(domain.ErrConversionFailed, err)
	}
	return out, nil
}
