package templates

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/devantler-tech/templ-gen/pkg/apis/istio/v1alpha3"
	"github.com/devantler-tech/templ-gen/pkg/fsutil"
	"github.com/devantler-tech/templ-gen/pkg/ui/logger"
)

// DefaultDir is the output directory used when none is configured.
const DefaultDir = "templ-gen"

var (
	// ErrNoTemplates is returned when no template files match a request.
	ErrNoTemplates = errors.New("no template files found")
	// ErrEmptyService is returned by operations that need a service name.
	ErrEmptyService = errors.New("service name cannot be empty")
)

// Store owns the template files under Dir.
type Store struct {
	// Dir is the directory holding the template files.
	Dir string
	// Writer receives the per-file status lines.
	Writer io.Writer
}

// NewStore creates a Store for dir. An empty dir means DefaultDir.
func NewStore(dir string, writer io.Writer) *Store {
	if dir == "" {
		dir = DefaultDir
	}

	return &Store{Dir: dir, Writer: writer}
}

// Pattern returns the glob pattern candidate files of service are matched with.
// An empty service matches every YAML file.
func Pattern(service string) string {
	if service == "" {
		return "*" + v1alpha3.FileExtension
	}

	return fsutil.EscapeGlob(service) + "-*" + v1alpha3.FileExtension
}

// Owns reports whether the file name base belongs to service.
func Owns(service, base string) bool {
	suffix, ok := strings.CutPrefix(base, service+"-")
	if !ok {
		return false
	}

	suffix, ok = strings.CutSuffix(suffix, v1alpha3.FileExtension)
	if !ok {
		return false
	}

	_, known := v1alpha3.KindForFileSuffix(suffix)

	return known
}

// Owned returns the paths of the template files owned by service, in lexical order.
func (s *Store) Owned(service string) ([]string, error) {
	matches, err := fsutil.Glob(s.Dir, Pattern(service))
	if err != nil {
		return nil, fmt.Errorf("find templates: %w", err)
	}

	if service == "" {
		return matches, nil
	}

	owned := make([]string, 0, len(matches))

	for _, match := range matches {
		if Owns(service, filepath.Base(match)) {
			owned = append(owned, match)
		}
	}

	logger.WithComponent("templates").
		WithField("service", service).
		WithField("candidates", len(matches)).
		WithField("owned", len(owned)).
		Debug("matched template files")

	return owned, nil
}
