// Package query builds the filtered, sorted view of a store used by list.
package query

import (
	"cmp"
	"slices"
	"strings"

	"simpletasks/internal/store"
)

// Order is the explicit sort direction requested by the user.
type Order int

const (
	// Unordered keeps store order (subject to completion bucketing).
	Unordered Order = iota
	Ascending
	Descending
)

// Options controls filtering and sorting.
type Options struct {
	// Terms must all appear in a task's search text.
	Terms []string

	// IgnoreCase folds both terms and search text.
	IgnoreCase bool

	// TitleOnly searches titles only instead of title + description.
	TitleOnly bool

	Order Order

	// Mixed disables placing incomplete tasks before completed ones.
	Mixed bool
}

// Run returns the matching tasks in display order. The store is not modified;
// the returned entries are copies.
func Run(s *store.Store, opts Options) []store.Entry {
	terms := opts.Terms
	if opts.IgnoreCase {
		terms = make([]string, len(opts.Terms))
		for i, term := range opts.Terms {
			terms[i] = strings.ToLower(term)
		}
	}

	var out []store.Entry
	for _, e := range s.Entries() {
		if matches(searchText(e, opts), terms) {
			out = append(out, e)
		}
	}
	sortEntries(out, opts)
	return out
}

func searchText(e store.Entry, opts Options) string {
	text := e.Title
	if !opts.TitleOnly {
		text += e.Task.Description
	}
	if opts.IgnoreCase {
		text = strings.ToLower(text)
	}
	return text
}

func matches(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// sortEntries orders entries in place. Sorts are stable so ties keep store order.
//
//	explicit order, mixed:     description only
//	explicit order, not mixed: incomplete first, then description
//	no order, not mixed:       incomplete first
//	no order, mixed:           untouched
func sortEntries(entries []store.Entry, opts Options) {
	if opts.Order == Unordered {
		if !opts.Mixed {
			slices.SortStableFunc(entries, byBucket)
		}
		return
	}

	dir := 1
	if opts.Order == Descending {
		dir = -1
	}
	slices.SortStableFunc(entries, func(a, b store.Entry) int {
		if !opts.Mixed {
			if c := byBucket(a, b); c != 0 {
				return c
			}
		}
		return dir * strings.Compare(a.Task.Description, b.Task.Description)
	})
}

// byBucket puts incomplete tasks before completed ones.
func byBucket(a, b store.Entry) int {
	return cmp.Compare(bucket(a), bucket(b))
}

func bucket(e store.Entry) int {
	if e.Task.Completed {
		return 1
	}
	return 0
}
