package pompeii

// CapabilityKind selects which half of a Catalog a negotiation checks.
type CapabilityKind int

const (
	Extensions CapabilityKind = iota
	Layers
)

func (k CapabilityKind) String() string {
	if k == Layers {
		return "layer"
	}
	return "extension"
}

// Supporter is anything that can answer capability membership. *Catalog
// and PhysicalDevice both satisfy it.
type Supporter interface {
	Supports(kind CapabilityKind, name string) bool
}

// Negotiate concatenates requesters in order and checks every name against
// catalog. The first unsupported name fails the whole negotiation with
// CapabilityUnavailable; there is no partial result.
func Negotiate(kind CapabilityKind, catalog Supporter, requesters ...PropertySet) (PropertySet, error) {
	merged := ConcatPropertySets(requesters...)
	for _, name := range merged.names {
		if !catalog.Supports(kind, name) {
			return PropertySet{}, &Error{Kind: CapabilityUnavailable, Name: name}
		}
	}
	return merged, nil
}

// NegotiateExtensions is Negotiate for instance or device extensions.
func NegotiateExtensions(catalog Supporter, requesters ...PropertySet) (PropertySet, error) {
	return Negotiate(Extensions, catalog, requesters...)
}

// NegotiateLayers is Negotiate for layers.
func NegotiateLayers(catalog Supporter, requesters ...PropertySet) (PropertySet, error) {
	return Negotiate(Layers, catalog, requesters...)
}
