// Package marshaller converts templ-gen documents to and from their on-disk text form.
//
// Key functionality:
//   - Marshaller[T]: generic interface for serialization
//   - YAMLMarshaller[T]: block-style YAML backed by sigs.k8s.io/yaml
package marshaller
