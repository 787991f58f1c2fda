package fsutil

import "errors"

// ErrPathOutsideBase is returned when a path resolves outside its base directory.
var ErrPathOutsideBase = errors.New("invalid path: file is outside base directory")

// ErrEmptyOutputPath is returned when an output path is empty.
var ErrEmptyOutputPath = errors.New("output path cannot be empty")

// ErrBasePath is returned when a base directory is empty.
var ErrBasePath = errors.New("base path cannot be empty")

const (
	dirPermUserGroupRX = 0o750
	filePermUserRW     = 0o600
)
