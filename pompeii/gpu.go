package pompeii

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type DeviceType uint32

const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegrated
	DeviceTypeDiscrete
	DeviceTypeVirtual
	DeviceTypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeOther:
		return "Other"
	case DeviceTypeIntegrated:
		return "Integrated"
	case DeviceTypeDiscrete:
		return "Discrete"
	case DeviceTypeVirtual:
		return "Virtual"
	case DeviceTypeCPU:
		return "CPU"
	default:
		return fmt.Sprintf("DeviceType(%d)", uint32(t))
	}
}

// QueueFlags is the capability bitset of a queue family. QueuePresent is
// never reported by the driver for a family on its own, since presentation
// support depends on the surface.
type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
	QueuePresent
)

var queueFlagNames = []struct {
	flag QueueFlags
	name string
}{
	{QueueGraphics, "GRAPHICS"},
	{QueueCompute, "COMPUTE"},
	{QueueTransfer, "TRANSFER"},
	{QueueSparseBinding, "SPARSE"},
	{QueuePresent, "PRESENT"},
}

func (f QueueFlags) Has(flag QueueFlags) bool {
	return f&flag == flag
}

func (f QueueFlags) String() string {
	if f == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range queueFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// FeatureFlags is an opaque passthrough of optional device features.
type FeatureFlags uint64

const (
	FeatureGeometryShader FeatureFlags = 1 << iota
	FeatureTessellationShader
	FeatureSamplerAnisotropy
	FeatureMultiViewport
	FeatureWideLines
	FeatureFillModeNonSolid
	FeatureShaderFloat64
	FeatureTextureCompressionBC
)

var featureNames = []string{
	"geometryShader",
	"tessellationShader",
	"samplerAnisotropy",
	"multiViewport",
	"wideLines",
	"fillModeNonSolid",
	"shaderFloat64",
	"textureCompressionBC",
}

func (f FeatureFlags) Names() []string {
	var names []string
	for i, n := range featureNames {
		if f&(1<<uint(i)) != 0 {
			names = append(names, n)
		}
	}
	return names
}

func (f FeatureFlags) String() string {
	return strings.Join(f.Names(), ",")
}

// QueueFamilyProperties is a queue family as the driver reports it.
type QueueFamilyProperties struct {
	Flags      QueueFlags
	QueueCount uint32
}

type QueueFamily struct {
	Index      int
	Flags      QueueFlags
	QueueCount uint32
}

func (q QueueFamily) Graphics() bool {
	return q.Flags.Has(QueueGraphics)
}

func (q QueueFamily) Compute() bool {
	return q.Flags.Has(QueueCompute)
}

func (q QueueFamily) Transfer() bool {
	return q.Flags.Has(QueueTransfer)
}

type DeviceLimits struct {
	MaxImageDimension2D   uint32
	MaxViewports          uint32
	MaxViewportDimensions [2]uint32
}

// DeviceProperties are passed through from the driver without
// interpretation, apart from formatting.
type DeviceProperties struct {
	Name          string
	Type          DeviceType
	VendorID      uint32
	DeviceID      uint32
	APIVersion    Version
	DriverVersion Version
	Limits        DeviceLimits
	// MemorySize is the sum of all memory heap sizes.
	MemorySize uint64
}

// PhysicalDevice is one entry of an Inventory. Handle is borrowed from
// the driver and is never freed through this record.
type PhysicalDevice struct {
	Handle        PhysicalDeviceHandle
	Properties    DeviceProperties
	Features      FeatureFlags
	QueueFamilies []QueueFamily
	Extensions    []string
}

func (g PhysicalDevice) Name() string {
	return g.Properties.Name
}

func (g PhysicalDevice) String() string {
	return g.Properties.Name
}

// Supports reports device extension support. Device layers are
// deprecated and never reported.
func (g PhysicalDevice) Supports(kind CapabilityKind, name string) bool {
	return kind == Extensions && slices.Contains(g.Extensions, name)
}

// Match reports whether the device can present at the given resolution.
func (g PhysicalDevice) Match(resWidth, resHeight uint32) bool {
	dims := g.Properties.Limits.MaxViewportDimensions
	return dims[0] >= resWidth && dims[1] >= resHeight
}

func (g PhysicalDevice) Debug() string {
	buffer := bytes.Buffer{}

	buffer.WriteString(fmt.Sprintln("Device Name:", g.Properties.Name))
	buffer.WriteString(fmt.Sprintln("Device Type:", g.Properties.Type))
	buffer.WriteString("## Backend\n")
	buffer.WriteString(fmt.Sprintf("Vulkan v%s\n", g.Properties.APIVersion))
	buffer.WriteString(fmt.Sprintf("Driver v%s\n", g.Properties.DriverVersion))
	buffer.WriteString(fmt.Sprintln("Max Image Dimension:", g.Properties.Limits.MaxImageDimension2D))
	buffer.WriteString(fmt.Sprintln("Max Viewports:", g.Properties.Limits.MaxViewports))
	buffer.WriteString(fmt.Sprintln("Max Viewport Dimensions:", g.Properties.Limits.MaxViewportDimensions[0], g.Properties.Limits.MaxViewportDimensions[1]))
	buffer.WriteString(fmt.Sprintln("Queue Families:", len(g.QueueFamilies)))
	for _, q := range g.QueueFamilies {
		buffer.WriteString(fmt.Sprintf("  %d: %s x%d\n", q.Index, q.Flags, q.QueueCount))
	}

	return buffer.String()
}

// Inventory is a snapshot of the physical devices of one instance, in
// driver enumeration order.
type Inventory []PhysicalDevice

// Enumerate lists every physical device of instance with its properties,
// features, queue families and device extensions.
func Enumerate(d Driver, instance *InstanceContext) (Inventory, error) {
	if instance == nil || instance.Destroyed() {
		return nil, newError(EnumerationFailed, nil, "instance is not live")
	}

	handles, err := enumerate("physical devices", func(count *uint32, out []PhysicalDeviceHandle) error {
		return d.EnumeratePhysicalDevices(instance.Handle(), count, out)
	})
	if err != nil {
		return nil, err
	}
	if len(handles) == 0 {
		return nil, &Error{Kind: NoDevicesFound}
	}

	inventory := make(Inventory, 0, len(handles))
	for _, h := range handles {
		g, err := describeDevice(d, h)
		if err != nil {
			return nil, err
		}
		inventory = append(inventory, g)
	}
	return inventory, nil
}

func describeDevice(d Driver, h PhysicalDeviceHandle) (PhysicalDevice, error) {
	g := PhysicalDevice{
		Handle:     h,
		Properties: d.PhysicalDeviceProperties(h),
		Features:   d.PhysicalDeviceFeatures(h),
	}

	families, err := enumerate("queue families", func(count *uint32, out []QueueFamilyProperties) error {
		return d.EnumerateQueueFamilies(h, count, out)
	})
	if err != nil {
		return g, err
	}
	g.QueueFamilies = make([]QueueFamily, len(families))
	for i, f := range families {
		g.QueueFamilies[i] = QueueFamily{
			Index:      i,
			Flags:      f.Flags &^ QueuePresent,
			QueueCount: f.QueueCount,
		}
	}

	g.Extensions, err = enumerate("device extensions", func(count *uint32, out []string) error {
		return d.EnumerateDeviceExtensions(h, count, out)
	})
	if err != nil {
		return g, err
	}
	return g, nil
}
