package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Style controls the output of a report.
type Style struct {
	Color     bool // use terminal colors
	LineWidth int  // line length in fixed width positions; 0 means 80
}

const labelWidth = 36

// Fprint writes a table of the results of r to w, one line per strategy,
// with a bar proportional to the lookup time.
func (r Report) Fprint(w io.Writer, style Style) error {
	if style.LineWidth <= 0 {
		style.LineWidth = 80
	}
	barWidth := max(style.LineWidth-labelWidth-32, 10)
	fastest, slowest := color.New(color.FgGreen), color.New(color.FgRed)
	plain := color.New(color.FgBlue)
	for _, c := range []*color.Color{fastest, slowest, plain} {
		if style.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if _, err := fmt.Fprintf(w, "%d words, %d random samples\n", r.Words, r.Samples); err != nil {
		return err
	}
	lo, hi := r.extremes()
	for i, res := range r.Results {
		c := plain
		switch {
		case len(r.Results) > 1 && i == hi:
			c = slowest
		case len(r.Results) > 1 && i == lo:
			c = fastest
		}
		bar := 0
		if t := r.Results[hi].Lookup; t > 0 {
			bar = int(int64(barWidth) * int64(res.Lookup) / int64(t))
		}
		line := fmt.Sprintf("%d) %-*s %12s ", i+1, labelWidth, res.Strategy, res.Lookup)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := c.Fprint(w, strings.Repeat("#", max(bar, 1))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, treeInfo(res)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// extremes returns the indices of the fastest and the slowest lookup.
func (r Report) extremes() (lo, hi int) {
	for i, res := range r.Results {
		if res.Lookup < r.Results[lo].Lookup {
			lo = i
		}
		if res.Lookup > r.Results[hi].Lookup {
			hi = i
		}
	}
	return lo, hi
}

func treeInfo(res Result) string {
	if res.Height < 0 {
		return ""
	}
	balance := "unbalanced"
	if res.Balanced {
		balance = "balanced"
	}
	return fmt.Sprintf("  height %d, %s", res.Height, balance)
}
