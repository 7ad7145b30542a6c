// Package diff implements the two tree-difference algorithms valdedup
// is built around: the pairwise directed diff of a candidate value
// tree against a baseline, and the multi-way quorum reduction that
// splits N value trees into a common base and per-input deviations.
//
// Both algorithms are pure: inputs are never mutated, and results
// either alias input subtrees (wholesale-replacement cases) or are
// freshly built composites. Callers must treat results as read-only.
package diff
