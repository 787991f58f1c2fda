// Package io provides utilities for input and output operations related to template generation.
//
// Subpackages:
//   - config-manager: Configuration loading and management
//   - generator: Document generation, including the Istio template set
//   - marshaller: Serialization and deserialization
//
// For low-level file I/O operations (reading, writing, globbing, removal),
// see the fsutil package.
package io
