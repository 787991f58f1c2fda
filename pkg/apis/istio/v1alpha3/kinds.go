package v1alpha3

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// SchemeGroupVersion is the group version all generated documents belong to.
//
//nolint:gochecknoglobals // mirrors the apimachinery register.go convention
var SchemeGroupVersion = schema.GroupVersion{Group: "networking.istio.io", Version: "v1alpha3"}

// Kind identifies one of the generated resource kinds.
type Kind string

// Supported kinds, in generation order.
const (
	KindVirtualService  Kind = "VirtualService"
	KindDestinationRule Kind = "DestinationRule"
	KindGateway         Kind = "Gateway"
	KindServiceEntry    Kind = "ServiceEntry"
)

// AllKinds returns every supported kind in the order files are generated.
func AllKinds() []Kind {
	return []Kind{
		KindVirtualService,
		KindDestinationRule,
		KindGateway,
		KindServiceEntry,
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// NameSuffix returns the suffix appended to the service name in metadata.name.
func (k Kind) NameSuffix() string {
	switch k {
	case KindVirtualService:
		return "vs"
	case KindDestinationRule:
		return "dr"
	case KindGateway:
		return "gateway"
	case KindServiceEntry:
		return "se"
	default:
		return ""
	}
}

// FileSuffix returns the suffix appended to the service name in the template filename.
func (k Kind) FileSuffix() string {
	switch k {
	case KindVirtualService:
		return "virtual-service"
	case KindDestinationRule:
		return "destination-rule"
	case KindGateway:
		return "gateway"
	case KindServiceEntry:
		return "service-entry"
	default:
		return ""
	}
}

// KindForFileSuffix returns the kind whose FileSuffix matches suffix.
func KindForFileSuffix(suffix string) (Kind, bool) {
	for _, kind := range AllKinds() {
		if kind.FileSuffix() == suffix {
			return kind, true
		}
	}

	return "", false
}

// TypeMeta returns the apiVersion/kind pair for the kind.
func (k Kind) TypeMeta() metav1.TypeMeta {
	apiVersion, kind := SchemeGroupVersion.WithKind(string(k)).ToAPIVersionAndKind()

	return metav1.TypeMeta{
		APIVersion: apiVersion,
		Kind:       kind,
	}
}

// ResourceName returns the metadata.name for a service's document of this kind.
func (k Kind) ResourceName(service string) string {
	return service + "-" + k.NameSuffix()
}

// FileExtension is the extension of every template file.
const FileExtension = ".yaml"

// FileName returns the template filename for a service's document of this kind.
func (k Kind) FileName(service string) string {
	return service + "-" + k.FileSuffix() + FileExtension
}
