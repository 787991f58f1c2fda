// Package istiogenerator builds the Istio networking templates for a service and writes them to disk.
//
// The builders are pure functions: they take plain strings, never validate them, and return a
// freshly constructed document. Generator turns one service into its four template files.
package istiogenerator
