// Package io groups input and output concerns around values files.
//
// Subpackages:
//   - valuesfile: Reading and writing YAML values files as value trees
//   - configmanager: Layered tool configuration (file, environment, flags)
//
// For low-level overwrite-aware file writing, see the fsutil package.
package io
