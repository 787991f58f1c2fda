// Package v1alpha3 contains the Istio networking.istio.io/v1alpha3 resource shapes emitted by templ-gen.
//
// Only the fields templ-gen populates are modelled. The types serialize through their json tags,
// which is what sigs.k8s.io/yaml uses for YAML output.
package v1alpha3
