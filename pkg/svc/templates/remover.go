package templates

import (
	"fmt"

	"github.com/devantler-tech/templ-gen/pkg/fsutil"
	"github.com/devantler-tech/templ-gen/pkg/ui/notify"
)

// Delete removes the template files owned by service and returns the removed paths.
//
// It returns ErrNoTemplates when service owns no files. Removal stops at the first
// failure; files after it are left in place.
func (s *Store) Delete(service string) ([]string, error) {
	if service == "" {
		return nil, fmt.Errorf("delete templates: %w", ErrEmptyService)
	}

	paths, err := s.Owned(service)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w for service: %s", ErrNoTemplates, service)
	}

	removed, err := fsutil.RemoveFiles(paths, func(path string) {
		notify.Removef(s.Writer, "Deleted: %s", path)
	})
	if err != nil {
		return removed, fmt.Errorf("delete templates: %w", err)
	}

	return removed, nil
}
