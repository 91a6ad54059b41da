package pompeii

import "github.com/dolthub/swiss"

// Catalog is the set of extensions and layers the driver supports. It is
// fetched once per negotiation and never changes afterwards.
type Catalog struct {
	extensions *swiss.Map[string, struct{}]
	layers     *swiss.Map[string, struct{}]
}

// NewCatalog builds a catalog from known names.
func NewCatalog(extensions, layers []string) *Catalog {
	return &Catalog{
		extensions: nameSet(extensions),
		layers:     nameSet(layers),
	}
}

// FetchCatalog queries the driver for its supported instance extensions
// and layers.
func FetchCatalog(d Driver) (*Catalog, error) {
	extensions, err := enumerate("instance extensions", d.EnumerateInstanceExtensions)
	if err != nil {
		return nil, err
	}
	layers, err := enumerate("instance layers", d.EnumerateInstanceLayers)
	if err != nil {
		return nil, err
	}
	return NewCatalog(extensions, layers), nil
}

func nameSet(names []string) *swiss.Map[string, struct{}] {
	m := swiss.NewMap[string, struct{}](uint32(len(names)))
	for _, n := range names {
		m.Put(n, struct{}{})
	}
	return m
}

func (c *Catalog) SupportsExtension(name string) bool {
	return c.extensions.Has(name)
}

func (c *Catalog) SupportsLayer(name string) bool {
	return c.layers.Has(name)
}

func (c *Catalog) ExtensionCount() int {
	return c.extensions.Count()
}

func (c *Catalog) LayerCount() int {
	return c.layers.Count()
}

// Supports reports membership in the set selected by kind.
func (c *Catalog) Supports(kind CapabilityKind, name string) bool {
	switch kind {
	case Extensions:
		return c.SupportsExtension(name)
	case Layers:
		return c.SupportsLayer(name)
	default:
		return false
	}
}
