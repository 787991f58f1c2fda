package di

import (
	"github.com/devantler-tech/templ-gen/pkg/apis/istio/v1alpha3"
	"github.com/devantler-tech/templ-gen/pkg/io/marshaller"
	"github.com/devantler-tech/templ-gen/pkg/ui/timer"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by root command and tests.
// It registers default implementations for the timer and the document marshaller.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideDocumentMarshaller,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideDocumentMarshaller registers the YAML marshaller used to serialize Istio documents.
func provideDocumentMarshaller(i Injector) error {
	do.Provide(i, func(Injector) (marshaller.Marshaller[v1alpha3.Document], error) {
		return marshaller.NewYAMLMarshaller[v1alpha3.Document](), nil
	})

	return nil
}
