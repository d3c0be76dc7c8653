package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sortedWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	return words
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orderedtree")
	defer teardown()
	//
	words := sortedWords(500)
	report, err := Run(words, 50, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Results) != len(Strategies) {
		t.Fatalf("expected %d results, have %d", len(Strategies), len(report.Results))
	}
	for i, r := range report.Results {
		if r.Strategy != Strategies[i] {
			t.Errorf("result #%d is for %s, expected %s", i, r.Strategy, Strategies[i])
		}
		if r.Found != 50 {
			t.Errorf("%s: expected all 50 samples to be found, found %d", r.Strategy, r.Found)
		}
	}
	res := report.Results
	if res[ListScan].Height != -1 {
		t.Errorf("list scan should not report a height")
	}
	if res[SortedTree].Height != 499 || res[SortedTree].Balanced {
		t.Errorf("expected chain of height 499, have %d", res[SortedTree].Height)
	}
	if h := res[ShuffledTree].Height; h >= 100 {
		t.Errorf("expected random tree to be much lower than a chain, height is %d", h)
	}
	if res[BalancedTree].Height != 8 || !res[BalancedTree].Balanced {
		t.Errorf("expected balanced tree of height 8, have %d", res[BalancedTree].Height)
	}
	if words[0] != "w0000" || words[499] != "w0499" {
		t.Errorf("Run must not modify the word list")
	}
}

func TestRunClampsSamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orderedtree")
	defer teardown()
	//
	report, err := Run(sortedWords(10), 1000, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if report.Samples != 10 {
		t.Errorf("expected samples to be clamped to 10, are %d", report.Samples)
	}
}

func TestRunWithoutWords(t *testing.T) {
	if _, err := Run(nil, 10, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNoWords) {
		t.Errorf("expected ErrNoWords, got %v", err)
	}
}

func TestFprint(t *testing.T) {
	report := Report{
		Words:   100,
		Samples: 10,
		Results: []Result{
			{Strategy: ListScan, Lookup: 40 * time.Millisecond, Height: -1},
			{Strategy: SortedTree, Lookup: 20 * time.Millisecond, Height: 99},
			{Strategy: BalancedTree, Lookup: time.Millisecond, Height: 6, Balanced: true},
		},
	}
	var b strings.Builder
	if err := report.Fprint(&b, Style{LineWidth: 100}); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 result lines, have %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1) sorted list") {
		t.Errorf("unexpected first result line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "height 99, unbalanced") || !strings.HasSuffix(lines[3], "height 6, balanced") {
		t.Errorf("unexpected tree info:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no escape sequences without color")
	}
	// slowest bar takes the full bar width of 100-36-32
	if n := strings.Count(lines[1], "#"); n != 32 {
		t.Errorf("expected bar of length 32 for slowest lookup, is %d", n)
	}
	b.Reset()
	if err := report.Fprint(&b, Style{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "\x1b[") {
		t.Errorf("expected escape sequences with color")
	}
}
