package diff

import (
	"fmt"
	"math"

	"github.com/devantler-tech/valdedup/pkg/yamlvalue"
)

// Reducer partitions N value trees into a common base that meets a
// quorum fraction and per-input deviations from that base.
type Reducer struct {
	quorum   float64
	settings settings
}

// NewReducer creates a reducer for the given quorum fraction. The
// fraction must lie in (0, 1]; anything else would let every value
// trivially meet quorum and is rejected with ErrInvalidQuorum.
func NewReducer(quorum float64, opts ...Option) (*Reducer, error) {
	if quorum <= 0 || quorum > 1 || math.IsNaN(quorum) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidQuorum, quorum)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return &Reducer{quorum: quorum, settings: s}, nil
}

// Reduce returns the base value meeting the quorum at each tree
// position, plus one diff per input, index-aligned with values. A nil
// base means no position met quorum; a nil diff slot means that input
// does not deviate from the base. Results may alias input subtrees and
// must be treated as read-only.
//
// Scalar positions are decided by voting: distinct values are counted
// in first-seen input order and the first one reaching
// ceil(quorum × N) wins, which keeps tie-breaks deterministic. Map
// positions recurse key-by-key over the union of all keys, with
// missing keys participating as null. Array positions are atomic: they
// are never folded into a base, even when identical across all inputs.
func (r *Reducer) Reduce(values []*yamlvalue.Value) (*yamlvalue.Value, []*yamlvalue.Value, error) {
	return r.reduce(values, 0)
}

func (r *Reducer) reduce(values []*yamlvalue.Value, depth int) (*yamlvalue.Value, []*yamlvalue.Value, error) {
	if depth > r.settings.maxDepth {
		return nil, nil, ErrDepthExceeded
	}

	if len(values) == 0 {
		return nil, []*yamlvalue.Value{}, nil
	}

	quorumCount := int(math.Ceil(r.quorum * float64(len(values))))
	r.settings.observer.QuorumResolved(quorumCount, len(values))

	kind, mixed := commonKind(values)
	if mixed {
		r.settings.observer.KindMismatch(kindsOf(values))

		return nil, verbatimDiffs(values), nil
	}

	switch {
	case kind.IsScalar():
		return r.reduceScalars(values, quorumCount)
	case kind == yamlvalue.KindMap:
		return r.reduceMaps(values, depth)
	default:
		// Arrays are atomic at quorum level: positional voting across
		// diverging instances has no clear meaning, so every input
		// keeps its array verbatim and no base is formed.
		diffs := make([]*yamlvalue.Value, len(values))
		copy(diffs, values)

		return nil, diffs, nil
	}
}

// reduceScalars votes on a single scalar position.
func (r *Reducer) reduceScalars(
	values []*yamlvalue.Value,
	quorumCount int,
) (*yamlvalue.Value, []*yamlvalue.Value, error) {
	type tally struct {
		value *yamlvalue.Value
		count int
	}

	// Count in first-seen input order so the winner among quorum ties
	// is reproducible across runs.
	var tallies []tally

	for _, value := range values {
		found := false

		for i := range tallies {
			if yamlvalue.Equal(tallies[i].value, value) {
				tallies[i].count++
				found = true

				break
			}
		}

		if !found {
			tallies = append(tallies, tally{value: value, count: 1})
		}
	}

	var base *yamlvalue.Value

	for _, t := range tallies {
		if t.count >= quorumCount {
			base = t.value

			break
		}
	}

	if base == nil {
		return nil, verbatimDiffs(values), nil
	}

	diffs := make([]*yamlvalue.Value, len(values))

	for i, value := range values {
		if !yamlvalue.Equal(value, base) {
			diffs[i] = value
		}
	}

	return base, diffs, nil
}

// reduceMaps recurses over the union of all keys, one column of N
// values per key.
func (r *Reducer) reduceMaps(
	values []*yamlvalue.Value,
	depth int,
) (*yamlvalue.Value, []*yamlvalue.Value, error) {
	baseMap := yamlvalue.Map()
	diffMaps := make([]*yamlvalue.Value, len(values))

	for i := range diffMaps {
		diffMaps[i] = yamlvalue.Map()
	}

	for _, key := range unionKeys(values) {
		r.settings.observer.KeyVisited(key)

		column := make([]*yamlvalue.Value, len(values))
		for i, value := range values {
			column[i] = value.GetOrNull(key)
		}

		subBase, subDiffs, err := r.reduce(column, depth+1)
		if err != nil {
			return nil, nil, err
		}

		if subBase != nil {
			baseMap.Set(key, subBase)
		}

		for i, subDiff := range subDiffs {
			// Null sub-diffs are placeholders, not deviations.
			if subDiff != nil && !subDiff.IsNull() {
				diffMaps[i].Set(key, subDiff)
			}
		}
	}

	var base *yamlvalue.Value
	if baseMap.Len() > 0 {
		base = baseMap
	}

	diffs := make([]*yamlvalue.Value, len(values))

	for i, diffMap := range diffMaps {
		if diffMap.Len() > 0 {
			diffs[i] = diffMap
		}
	}

	return base, diffs, nil
}

// commonKind returns the shared kind of all values, or mixed=true when
// more than one kind occurs.
func commonKind(values []*yamlvalue.Value) (yamlvalue.Kind, bool) {
	kind := values[0].Kind()

	for _, value := range values[1:] {
		if value.Kind() != kind {
			return kind, true
		}
	}

	return kind, false
}

// kindsOf returns the kind of each value, index-aligned.
func kindsOf(values []*yamlvalue.Value) []yamlvalue.Kind {
	kinds := make([]yamlvalue.Kind, len(values))
	for i, value := range values {
		kinds[i] = value.Kind()
	}

	return kinds
}

// verbatimDiffs maps every non-null input into its own diff slot. Used
// when no base can be formed at a position.
func verbatimDiffs(values []*yamlvalue.Value) []*yamlvalue.Value {
	diffs := make([]*yamlvalue.Value, len(values))

	for i, value := range values {
		if !value.IsNull() {
			diffs[i] = value
		}
	}

	return diffs
}

// unionKeys returns the union of map keys across all values, in
// first-seen order across inputs so output key order is deterministic.
func unionKeys(values []*yamlvalue.Value) []string {
	seen := map[string]struct{}{}

	var keys []string

	for _, value := range values {
		for _, key := range value.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}
