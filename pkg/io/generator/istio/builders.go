package istiogenerator

import (
	"github.com/devantler-tech/templ-gen/pkg/apis/istio/v1alpha3"
)

// Fixed values shared by the builders.
const (
	// SubsetName is the subset routed to by the VirtualService and declared by the DestinationRule.
	SubsetName = "v1"
	// SubsetVersionLabel is the pod label selecting SubsetName.
	SubsetVersionLabel = "version"
	// FullWeight routes all traffic to a single destination.
	FullWeight int32 = 100
	// IngressGatewaySelectorKey and IngressGatewaySelectorValue select the ingress gateway workloads.
	IngressGatewaySelectorKey   = "istio"
	IngressGatewaySelectorValue = "ingressgateway"
	// GatewayPort is the HTTP port opened by the Gateway.
	GatewayPort uint32 = 80
	// ServiceEntryPort is the HTTPS port declared by the ServiceEntry.
	ServiceEntryPort uint32 = 443
	// ServiceEntryDefaultDomain is appended to ServiceEntry hosts when no domain is given.
	ServiceEntryDefaultDomain = "example.com"
)

// ServiceHost returns host.domain, or host alone when domain is empty.
func ServiceHost(host, domain string) string {
	if domain == "" {
		return host
	}

	return host + "." + domain
}

// ServiceEntryHost returns host.domain, or host.example.com when domain is empty.
//
// This differs from ServiceHost on purpose: a ServiceEntry always names an external FQDN.
func ServiceEntryHost(host, domain string) string {
	if domain == "" {
		return host + "." + ServiceEntryDefaultDomain
	}

	return host + "." + domain
}

// GatewayHosts returns the wildcard hosts a Gateway accepts for domain.
func GatewayHosts(domain string) []string {
	if domain == "" {
		return []string{"*"}
	}

	return []string{"*." + domain}
}

// NewVirtualService routes all HTTP traffic for the service host to the v1 subset.
func NewVirtualService(name, namespace, host, domain string) *v1alpha3.VirtualService {
	serviceHost := ServiceHost(host, domain)

	return &v1alpha3.VirtualService{
		TypeMeta: v1alpha3.KindVirtualService.TypeMeta(),
		Metadata: v1alpha3.ObjectMeta{Name: name, Namespace: namespace},
		Spec: v1alpha3.VirtualServiceSpec{
			Hosts: []string{serviceHost},
			HTTP: []v1alpha3.HTTPRoute{{
				Route: []v1alpha3.HTTPRouteDestination{{
					Destination: v1alpha3.Destination{
						Host:   serviceHost,
						Subset: SubsetName,
					},
					Weight: FullWeight,
				}},
			}},
		},
	}
}

// NewDestinationRule load balances the service host round-robin and declares the v1 subset.
func NewDestinationRule(name, namespace, host, domain string) *v1alpha3.DestinationRule {
	return &v1alpha3.DestinationRule{
		TypeMeta: v1alpha3.KindDestinationRule.TypeMeta(),
		Metadata: v1alpha3.ObjectMeta{Name: name, Namespace: namespace},
		Spec: v1alpha3.DestinationRuleSpec{
			Host: ServiceHost(host, domain),
			TrafficPolicy: v1alpha3.TrafficPolicy{
				LoadBalancer: v1alpha3.LoadBalancerSettings{
					Simple: v1alpha3.LoadBalancerRoundRobin,
				},
			},
			Subsets: []v1alpha3.Subset{{
				Name:   SubsetName,
				Labels: map[string]string{SubsetVersionLabel: SubsetName},
			}},
		},
	}
}

// NewGateway opens HTTP port 80 on the ingress gateway for the domain's wildcard host.
func NewGateway(name, namespace, domain string) *v1alpha3.Gateway {
	return &v1alpha3.Gateway{
		TypeMeta: v1alpha3.KindGateway.TypeMeta(),
		Metadata: v1alpha3.ObjectMeta{Name: name, Namespace: namespace},
		Spec: v1alpha3.GatewaySpec{
			Selector: map[string]string{IngressGatewaySelectorKey: IngressGatewaySelectorValue},
			Servers: []v1alpha3.Server{{
				Port: v1alpha3.Port{
					Number:   GatewayPort,
					Name:     "http",
					Protocol: v1alpha3.ProtocolHTTP,
				},
				Hosts: GatewayHosts(domain),
			}},
		},
	}
}

// NewServiceEntry registers the service host as an external HTTPS endpoint resolved through DNS.
func NewServiceEntry(name, namespace, host, domain string) *v1alpha3.ServiceEntry {
	return &v1alpha3.ServiceEntry{
		TypeMeta: v1alpha3.KindServiceEntry.TypeMeta(),
		Metadata: v1alpha3.ObjectMeta{Name: name, Namespace: namespace},
		Spec: v1alpha3.ServiceEntrySpec{
			Hosts: []string{ServiceEntryHost(host, domain)},
			Ports: []v1alpha3.Port{{
				Number:   ServiceEntryPort,
				Name:     "https",
				Protocol: v1alpha3.ProtocolHTTPS,
			}},
			Resolution: v1alpha3.ResolutionDNS,
			Location:   v1alpha3.LocationMeshExternal,
		},
	}
}
