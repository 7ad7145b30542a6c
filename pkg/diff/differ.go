package diff

import "github.com/devantler-tech/valdedup/pkg/yamlvalue"

// Differ computes the minimal directed difference of a candidate value
// tree relative to a baseline.
type Differ struct {
	settings settings
}

// NewDiffer creates a differ with the given options.
func NewDiffer(opts ...Option) *Differ {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return &Differ{settings: s}
}

// Diff returns what in candidate diverges from baseline, or nil when
// the two trees are structurally equal. The diff is directed: keys and
// positions present only in the baseline are ignored.
//
// For maps, the result contains only the candidate keys whose values
// diverge. For equal-length arrays, the result has the candidate's
// length with null placeholders at unchanged positions. For arrays of
// different length, differing scalars, and kind mismatches, the
// candidate is returned verbatim (the result aliases it).
func (d *Differ) Diff(candidate, baseline *yamlvalue.Value) (*yamlvalue.Value, error) {
	return d.diff(candidate, baseline, 0)
}

func (d *Differ) diff(candidate, baseline *yamlvalue.Value, depth int) (*yamlvalue.Value, error) {
	if depth > d.settings.maxDepth {
		return nil, ErrDepthExceeded
	}

	if yamlvalue.Equal(candidate, baseline) {
		return nil, nil
	}

	switch {
	case candidate.Kind() == yamlvalue.KindMap && baseline.Kind() == yamlvalue.KindMap:
		return d.diffMaps(candidate, baseline, depth)
	case candidate.Kind() == yamlvalue.KindArray && baseline.Kind() == yamlvalue.KindArray:
		return d.diffArrays(candidate, baseline, depth)
	default:
		if candidate.Kind() != baseline.Kind() {
			d.settings.observer.KindMismatch([]yamlvalue.Kind{candidate.Kind(), baseline.Kind()})
		}

		return candidate, nil
	}
}

// diffMaps keeps only the candidate keys whose values diverge from the
// baseline; a key missing from the baseline diffs against null.
func (d *Differ) diffMaps(candidate, baseline *yamlvalue.Value, depth int) (*yamlvalue.Value, error) {
	result := yamlvalue.Map()

	for _, key := range candidate.Keys() {
		d.settings.observer.KeyVisited(key)

		child, _ := candidate.Get(key)

		sub, err := d.diff(child, baseline.GetOrNull(key), depth+1)
		if err != nil {
			return nil, err
		}

		if sub != nil {
			result.Set(key, sub)
		}
	}

	if result.Len() == 0 {
		return nil, nil
	}

	return result, nil
}

// diffArrays diffs element-wise when lengths match, with null
// placeholders at unchanged positions. A length change makes
// positional diffing meaningless, so the whole candidate is the diff.
func (d *Differ) diffArrays(candidate, baseline *yamlvalue.Value, depth int) (*yamlvalue.Value, error) {
	if len(candidate.Items()) != len(baseline.Items()) {
		return candidate, nil
	}

	items := make([]*yamlvalue.Value, 0, len(candidate.Items()))
	changed := false

	for i, item := range candidate.Items() {
		sub, err := d.diff(item, baseline.Items()[i], depth+1)
		if err != nil {
			return nil, err
		}

		if sub != nil {
			items = append(items, sub)
			changed = true
		} else {
			items = append(items, yamlvalue.Null())
		}
	}

	if !changed {
		return nil, nil
	}

	return yamlvalue.Array(items...), nil
}
