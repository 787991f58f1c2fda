package marshaller

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// YAMLMarshaller marshals models as YAML.
//
// Values are washed through their JSON representation, so json tags decide field names and keys
// are emitted in sorted order. Output is deterministic for identical input.
type YAMLMarshaller[T any] struct{}

// Compile-time interface compliance verification.
var _ Marshaller[any] = (*YAMLMarshaller[any])(nil)

// NewYAMLMarshaller creates a new YAMLMarshaller instance.
func NewYAMLMarshaller[T any]() *YAMLMarshaller[T] {
	return &YAMLMarshaller[T]{}
}

// Marshal serializes the model into a YAML string.
func (m *YAMLMarshaller[T]) Marshal(model T) (string, error) {
	data, err := yaml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return string(data), nil
}

// Unmarshal deserializes YAML bytes into model.
func (m *YAMLMarshaller[T]) Unmarshal(data []byte, model *T) error {
	err := yaml.Unmarshal(data, model)
	if err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return nil
}

// UnmarshalString deserializes a YAML string into model.
func (m *YAMLMarshaller[T]) UnmarshalString(data string, model *T) error {
	return m.Unmarshal([]byte(data), model)
}
