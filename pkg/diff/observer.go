package diff

import "github.com/devantler-tech/valdedup/pkg/yamlvalue"

// Observer receives diagnostic events from the diff algorithms. All
// events are purely observational; attaching or omitting an observer
// never changes results.
type Observer interface {
	// KeyVisited is called for each map key under reduction.
	KeyVisited(key string)
	// QuorumResolved reports the resolved quorum threshold for a
	// reduction step over total inputs.
	QuorumResolved(count, total int)
	// KindMismatch reports that the values at a tree position have
	// differing kinds and cannot share a base.
	KindMismatch(kinds []yamlvalue.Kind)
}

// nopObserver is the default observer; it discards all events.
type nopObserver struct{}

func (nopObserver) KeyVisited(string)             {}
func (nopObserver) QuorumResolved(int, int)       {}
func (nopObserver) KindMismatch([]yamlvalue.Kind) {}

// settings holds configuration shared by Differ and Reducer.
type settings struct {
	maxDepth int
	observer Observer
}

// DefaultMaxDepth bounds recursion over pathologically nested trees.
// Well-formed values files stay far below it.
const DefaultMaxDepth = 1000

func defaultSettings() settings {
	return settings{
		maxDepth: DefaultMaxDepth,
		observer: nopObserver{},
	}
}

// Option configures a Differ or Reducer.
type Option func(*settings)

// WithMaxDepth overrides the maximum tree nesting depth.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.maxDepth = depth
	}
}

// WithObserver attaches a diagnostic observer.
func WithObserver(observer Observer) Option {
	return func(s *settings) {
		if observer != nil {
			s.observer = observer
		}
	}
}
