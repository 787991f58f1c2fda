// Package fsutil provides utilities for filesystem operations.
//
// Key functionality:
//   - File writing: TryWriteFile, EnsureDir
//   - Matching and removal: Glob, EscapeGlob, RemoveFiles
//   - Path operations: ExpandHomePath
package fsutil
