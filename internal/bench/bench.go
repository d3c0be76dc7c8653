/*
Package bench compares word lookups in ordered trees, built under
different insertion orders, against a linear scan of a word list.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/npillmayer/orderedtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'orderedtree'
func tracer() tracing.Trace {
	return tracing.Select("orderedtree")
}

// ErrNoWords is returned when running a benchmark on an empty word list.
var ErrNoWords = errors.New("bench: word list is empty")

// Strategy is a lookup strategy under test.
type Strategy int

// Lookup strategies, in the order they are run.
const (
	ListScan     Strategy = iota // linear scan of the word list
	SortedTree                   // tree built in word list order
	ShuffledTree                 // tree built in random order
	BalancedTree                 // tree built in random order, then rebalanced
)

// Strategies lists all strategies in run order.
var Strategies = []Strategy{ListScan, SortedTree, ShuffledTree, BalancedTree}

func (s Strategy) String() string {
	switch s {
	case ListScan:
		return "sorted list"
	case SortedTree:
		return "ordered list transferred into tree"
	case ShuffledTree:
		return "randomly filled tree"
	case BalancedTree:
		return "balanced tree"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Result is the outcome of timing one strategy.
type Result struct {
	Strategy Strategy
	Build    time.Duration // time to set up the structure searched
	Lookup   time.Duration // time for all sample lookups
	Found    int           // number of samples found
	Height   int           // tree height; -1 for ListScan
	Balanced bool          // tree passes the balance heuristic
}

// Report holds the results of a benchmark run.
type Report struct {
	Words   int
	Samples int
	Results []Result
}

// Run draws samples distinct random words from words and looks each of them
// up under every strategy. If samples exceeds the number of words, all
// words are used.
//
// rng drives sampling and shuffling; words is not modified.
func Run(words []string, samples int, rng *rand.Rand) (Report, error) {
	if len(words) == 0 {
		return Report{}, ErrNoWords
	}
	if samples <= 0 || samples > len(words) {
		samples = len(words)
	}
	targets := make([]string, samples)
	for i, j := range rng.Perm(len(words))[:samples] {
		targets[i] = words[j]
	}
	shuffled := slices.Clone(words)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	report := Report{Words: len(words), Samples: samples}
	for _, s := range Strategies {
		var r Result
		switch s {
		case ListScan:
			r = scanList(words, targets)
		case SortedTree:
			r = searchTree(words, targets, false)
		case ShuffledTree:
			r = searchTree(shuffled, targets, false)
		case BalancedTree:
			r = searchTree(shuffled, targets, true)
		}
		r.Strategy = s
		tracer().Infof("bench: %s: %d/%d found in %s", s, r.Found, samples, r.Lookup)
		report.Results = append(report.Results, r)
	}
	return report, nil
}

func scanList(words, targets []string) Result {
	r := Result{Height: -1}
	start := time.Now()
	for _, p := range targets {
		for _, w := range words {
			if w == p {
				r.Found++
				break
			}
		}
	}
	r.Lookup = time.Since(start)
	return r
}

func searchTree(words, targets []string, rebalance bool) Result {
	var r Result
	start := time.Now()
	tree := orderedtree.New[string]()
	for _, w := range words {
		_ = tree.Add(w) // no depth budget configured
	}
	if rebalance {
		tree.Rebalance()
	}
	r.Build = time.Since(start)
	start = time.Now()
	for _, p := range targets {
		if _, ok := tree.Find(p); ok {
			r.Found++
		}
	}
	r.Lookup = time.Since(start)
	r.Height, r.Balanced = tree.Height(), tree.IsBalanced()
	return r
}
