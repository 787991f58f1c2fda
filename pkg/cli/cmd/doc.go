// Package cmd provides the command-line interface for templ-gen.
//
// The root command carries the shared flags and delegates to:
//   - generate: write the Istio templates of a service
//   - delete: remove the Istio templates of a service
//   - list: show the templates in the output directory
package cmd
