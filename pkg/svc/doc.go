// Package svc provides service layer components for templ-gen.
//
// Subpackages:
//   - templates: Ownership rules, removal and listing of generated template files
package svc
