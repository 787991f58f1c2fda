package di

import (
	"fmt"

	"github.com/devantler-tech/templ-gen/pkg/apis/istio/v1alpha3"
	"github.com/devantler-tech/templ-gen/pkg/io/marshaller"
	"github.com/devantler-tech/templ-gen/pkg/ui/timer"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveDocumentMarshaller retrieves the document marshaller from the injector.
func ResolveDocumentMarshaller(injector Injector) (marshaller.Marshaller[v1alpha3.Document], error) {
	m, err := do.Invoke[marshaller.Marshaller[v1alpha3.Document]](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve marshaller dependency: %w", err)
	}

	return m, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
// The timer is started before handler runs.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		tmr.Start()

		return handler(cmd, injector, tmr)
	}
}
