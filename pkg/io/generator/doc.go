// Package generator provides an interface for generating files from Go models.
//
// Subpackages:
//   - yaml: generic YAML generator writing one model per file
//   - istio: Istio networking template builders and the per-service template set generator
package generator
