// Package yamlgenerator provides a generic generator that writes any model as YAML.
package yamlgenerator

import (
	"fmt"

	"github.com/devantler-tech/templ-gen/pkg/fsutil"
	"github.com/devantler-tech/templ-gen/pkg/io/generator"
	"github.com/devantler-tech/templ-gen/pkg/io/marshaller"
)

// Generator marshals a model to YAML and writes it to the requested output.
type Generator[T any] struct {
	Marshaller marshaller.Marshaller[T]
}

// Compile-time interface compliance verification.
var _ generator.Generator[any, generator.Options] = (*Generator[any])(nil)

// NewGenerator creates a Generator backed by the YAML marshaller.
func NewGenerator[T any]() *Generator[T] {
	return NewGeneratorWithMarshaller[T](marshaller.NewYAMLMarshaller[T]())
}

// NewGeneratorWithMarshaller creates a Generator using m for serialization.
func NewGeneratorWithMarshaller[T any](m marshaller.Marshaller[T]) *Generator[T] {
	return &Generator[T]{Marshaller: m}
}

// Generate marshals model and, when opts.Output is set, writes it there.
func (g *Generator[T]) Generate(model T, opts generator.Options) (string, error) {
	out, err := g.Marshaller.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("marshal model: %w", err)
	}

	if opts.Output == "" {
		return out, nil
	}

	result, err := fsutil.TryWriteFile(out, opts.Output, opts.Force)
	if err != nil {
		return "", fmt.Errorf("write model: %w", err)
	}

	return result, nil
}
