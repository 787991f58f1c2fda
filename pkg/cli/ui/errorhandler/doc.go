// Package errorhandler runs cobra commands and turns their failures into readable errors.
package errorhandler
