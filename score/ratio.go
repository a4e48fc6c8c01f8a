package score

import (
	"cmp"
	"slices"
)

// Ratio is a correct/total counter
type Ratio struct {
	Correct int
	Total   int
}

func (r *Ratio) add(correct bool) {
	r.Total++
	if correct {
		r.Correct++
	}
}

// Accuracy returns Correct/Total or 0 for an empty ratio.
func (r Ratio) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Percent is Accuracy scaled to 0..100
func (r Ratio) Percent() float64 {
	return r.Accuracy() * 100
}

// ErrorCount tells how many times Gold was tagged as Model.
type ErrorCount struct {
	Gold  string
	Model string
	Count int
}

type errorKey struct {
	gold  string
	model string
}

type errorHistogram map[errorKey]int

func (h errorHistogram) inc(gold, model string) {
	h[errorKey{gold: gold, model: model}]++
}

// sorted returns all the errors, most frequent first. Ties
// are ordered by gold and then by model tag.
func (h errorHistogram) sorted() []ErrorCount {
	ans := make([]ErrorCount, 0, len(h))
	for k, v := range h {
		ans = append(ans, ErrorCount{Gold: k.gold, Model: k.model, Count: v})
	}
	slices.SortFunc(ans, func(a, b ErrorCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Gold, b.Gold); c != 0 {
			return c
		}
		return cmp.Compare(a.Model, b.Model)
	})
	return ans
}

// TopErrors returns at most n items from the beginning of errs.
func TopErrors(errs []ErrorCount, n int) []ErrorCount {
	if n < 0 || n >= len(errs) {
		return errs
	}
	return errs[:n]
}
