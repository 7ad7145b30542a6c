// Package yamlvalue models YAML configuration values as a kind-tagged
// tree and provides the structural equality primitive and the codec
// used by the diff algorithms.
//
// Unlike decoding into map[string]any, the node-level codec preserves
// the distinction between integers and reals and keeps map keys in
// document order, both of which the diff output depends on.
package yamlvalue
