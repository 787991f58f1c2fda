// Package apis provides API type definitions for the documents templ-gen emits.
//
// This package contains versioned API types following Kubernetes API conventions:
//
//   - istio/v1alpha3: networking.istio.io/v1alpha3 VirtualService, DestinationRule, Gateway and ServiceEntry
//
// The API types are designed to be serialized to YAML.
package apis
