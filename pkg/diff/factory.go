package diff

// Factory creates configured differs and reducers. Commands resolve a
// Factory from the runtime container so tests can substitute
// instrumented implementations.
type Factory interface {
	Differ(opts ...Option) *Differ
	Reducer(quorum float64, opts ...Option) (*Reducer, error)
}

// DefaultFactory is the production Factory.
type DefaultFactory struct{}

// Differ returns a pairwise differ with the given options.
func (DefaultFactory) Differ(opts ...Option) *Differ {
	return NewDiffer(opts...)
}

// Reducer returns a quorum reducer with the given options.
func (DefaultFactory) Reducer(quorum float64, opts ...Option) (*Reducer, error) {
	return NewReducer(quorum, opts...)
}
