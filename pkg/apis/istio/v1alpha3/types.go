package v1alpha3

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ObjectMeta holds the metadata fields written for every document.
type ObjectMeta struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// Document is implemented by all resource types so they can be handled uniformly.
type Document interface {
	GetKind() Kind
	GetObjectMeta() ObjectMeta
}

// VirtualService routes traffic for a set of hosts.
type VirtualService struct {
	metav1.TypeMeta `json:",inline"`

	Metadata ObjectMeta         `json:"metadata"`
	Spec     VirtualServiceSpec `json:"spec"`
}

// VirtualServiceSpec is the spec of a VirtualService.
type VirtualServiceSpec struct {
	Hosts []string    `json:"hosts"`
	HTTP  []HTTPRoute `json:"http"`
}

// HTTPRoute is a single HTTP routing rule.
type HTTPRoute struct {
	Route []HTTPRouteDestination `json:"route"`
}

// HTTPRouteDestination sends a share of traffic to a destination.
type HTTPRouteDestination struct {
	Destination Destination `json:"destination"`
	Weight      int32       `json:"weight"`
}

// Destination identifies a host and subset.
type Destination struct {
	Host   string `json:"host"`
	Subset string `json:"subset"`
}

// DestinationRule configures traffic policy and subsets for a host.
type DestinationRule struct {
	metav1.TypeMeta `json:",inline"`

	Metadata ObjectMeta          `json:"metadata"`
	Spec     DestinationRuleSpec `json:"spec"`
}

// DestinationRuleSpec is the spec of a DestinationRule.
type DestinationRuleSpec struct {
	Host          string        `json:"host"`
	TrafficPolicy TrafficPolicy `json:"trafficPolicy"`
	Subsets       []Subset      `json:"subsets"`
}

// TrafficPolicy holds load balancing settings.
type TrafficPolicy struct {
	LoadBalancer LoadBalancerSettings `json:"loadBalancer"`
}

// LoadBalancerSettings selects a simple load balancing algorithm.
type LoadBalancerSettings struct {
	Simple LoadBalancerAlgorithm `json:"simple"`
}

// LoadBalancerAlgorithm is a simple load balancing algorithm name.
type LoadBalancerAlgorithm string

// LoadBalancerRoundRobin distributes requests in turn.
const LoadBalancerRoundRobin LoadBalancerAlgorithm = "ROUND_ROBIN"

// Subset is a named group of workload instances.
type Subset struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels"`
}

// Gateway describes a load balancer at the edge of the mesh.
type Gateway struct {
	metav1.TypeMeta `json:",inline"`

	Metadata ObjectMeta  `json:"metadata"`
	Spec     GatewaySpec `json:"spec"`
}

// GatewaySpec is the spec of a Gateway.
type GatewaySpec struct {
	Selector map[string]string `json:"selector"`
	Servers  []Server          `json:"servers"`
}

// Server is a listener exposed by a Gateway.
type Server struct {
	Port  Port     `json:"port"`
	Hosts []string `json:"hosts"`
}

// Port describes a port and protocol.
type Port struct {
	Number   uint32   `json:"number"`
	Name     string   `json:"name"`
	Protocol Protocol `json:"protocol"`
}

// Protocol is the protocol exposed on a port.
type Protocol string

// Supported protocols.
const (
	ProtocolHTTP  Protocol = "HTTP"
	ProtocolHTTPS Protocol = "HTTPS"
)

// ServiceEntry adds an entry to the mesh service registry.
type ServiceEntry struct {
	metav1.TypeMeta `json:",inline"`

	Metadata ObjectMeta       `json:"metadata"`
	Spec     ServiceEntrySpec `json:"spec"`
}

// ServiceEntrySpec is the spec of a ServiceEntry.
type ServiceEntrySpec struct {
	Hosts      []string   `json:"hosts"`
	Ports      []Port     `json:"ports"`
	Resolution Resolution `json:"resolution"`
	Location   Location   `json:"location"`
}

// Resolution is the service discovery mode for a ServiceEntry.
type Resolution string

// ResolutionDNS resolves endpoints through DNS.
const ResolutionDNS Resolution = "DNS"

// Location tells the mesh whether the service is inside or outside of it.
type Location string

// LocationMeshExternal marks a service that lives outside the mesh.
const LocationMeshExternal Location = "MESH_EXTERNAL"

// GetKind returns KindVirtualService.
func (*VirtualService) GetKind() Kind { return KindVirtualService }

// GetObjectMeta returns the document metadata.
func (v *VirtualService) GetObjectMeta() ObjectMeta { return v.Metadata }

// GetKind returns KindDestinationRule.
func (*DestinationRule) GetKind() Kind { return KindDestinationRule }

// GetObjectMeta returns the document metadata.
func (d *DestinationRule) GetObjectMeta() ObjectMeta { return d.Metadata }

// GetKind returns KindGateway.
func (*Gateway) GetKind() Kind { return KindGateway }

// GetObjectMeta returns the document metadata.
func (g *Gateway) GetObjectMeta() ObjectMeta { return g.Metadata }

// GetKind returns KindServiceEntry.
func (*ServiceEntry) GetKind() Kind { return KindServiceEntry }

// GetObjectMeta returns the document metadata.
func (s *ServiceEntry) GetObjectMeta() ObjectMeta { return s.Metadata }
