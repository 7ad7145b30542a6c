// Package valuesfile reads YAML values files into value trees and
// writes result trees back out, wrapping codec errors with file
// context.
package valuesfile
