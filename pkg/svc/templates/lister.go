package templates

import (
	"io"
	"path/filepath"

	"github.com/devantler-tech/templ-gen/pkg/ui/notify"
	"k8s.io/apimachinery/pkg/util/sets"
)

// List returns the base names of the template files owned by service, sorted.
// An empty service lists every YAML file in the directory.
func (s *Store) List(service string) ([]string, error) {
	paths, err := s.Owned(service)
	if err != nil {
		return nil, err
	}

	names := sets.New[string]()
	for _, path := range paths {
		names.Insert(filepath.Base(path))
	}

	return sets.List(names), nil
}

// PrintList writes a listing produced by List for service.
func PrintList(writer io.Writer, service string, names []string) {
	if len(names) == 0 {
		if service == "" {
			notify.Infof(writer, "No template files found")
		} else {
			notify.Infof(writer, "No template files found for service: %s", service)
		}

		return
	}

	notify.Titlef(writer, "📄", "Existing templates:")

	for _, name := range names {
		notify.ListItemf(writer, "%s", name)
	}
}
