package extractor

import (
	mapset "github.com/deckarep/golang-set/v2"

	"pagemapper/internal/entity"
)

// Aggregate runs the classifier over every element in document order
// and builds the grouped extraction: five per-strategy sequences, the
// combined sequence, and the page object. Sequences are deduplicated
// by exact string equality after the traversal, keeping the first
// occurrence of each selector; the page object keeps one entry per
// classified element regardless of selector duplicates.
//
// Zero elements is not an error: the result is well formed and empty.
func Aggregate(url string, elements []entity.Element) *entity.Extraction {
	res := entity.NewEmptyExtraction(url)
	namer := NewNamer(res.PageObject)

	buckets := make(map[entity.Strategy][]string, len(entity.Strategies))
	var all []string

	for i, el := range elements {
		match, ok := Classify(el)
		if !ok {
			continue
		}

		buckets[match.Strategy] = append(buckets[match.Strategy], match.Selector)
		all = append(all, match.Selector)

		namer.Record(match, el, i)
	}

	res.IDs = dedupe(buckets[entity.StrategyID])
	res.TestIDs = dedupe(buckets[entity.StrategyTestID])
	res.Names = dedupe(buckets[entity.StrategyName])
	res.Roles = dedupe(buckets[entity.StrategyRole])
	res.Text = dedupe(buckets[entity.StrategyText])
	res.All = dedupe(all)

	return res
}

// dedupe keeps the first occurrence of every selector. The returned
// slice is never nil so empty sequences serialize as [].
func dedupe(selectors []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(selectors))

	for _, s := range selectors {
		if seen.Add(s) {
			out = append(out, s)
		}
	}

	return out
}
