// Package pompeii bootstraps a graphics driver execution context.
//
// The sequence is strictly one-way: a Catalog of supported capabilities is
// fetched, requests are negotiated against it, an InstanceContext is created
// from the negotiated sets, its physical devices are enumerated into an
// Inventory, one device and its queue families are selected, and finally a
// LogicalDevice is built. Teardown runs in exact reverse.
//
// The package never calls a graphics API directly. Everything goes through
// a Driver, see package vkdriver for the Vulkan implementation.
package pompeii

import "fmt"

// Handles are opaque driver object references. The zero value of every
// handle type is the null handle.
type (
	InstanceHandle       uint64
	PhysicalDeviceHandle uint64
	DeviceHandle         uint64
	QueueHandle          uint64
	SurfaceHandle        uint64
	DebugHandle          uint64
)

// Version is used to specify versions of components
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Packed returns the version in the driver's packed 10/10/12 bit layout.
func (v Version) Packed() uint32 {
	return uint32(v.Major)<<22 | uint32(v.Minor)<<12 | uint32(v.Patch)
}

// UnpackVersion is the inverse of Version.Packed.
func UnpackVersion(packed uint32) Version {
	return Version{
		Major: int((packed >> 22) & 0x3ff),
		Minor: int((packed >> 12) & 0x3ff),
		Patch: int(packed & 0xfff),
	}
}

// ApplicationInfo identifies the application to the driver. It is passed
// through untouched.
type ApplicationInfo struct {
	Name          string
	Version       Version
	EngineName    string
	EngineVersion Version
	APIVersion    Version
}

// InstanceCreateInfo is what the driver receives on instance creation.
// Extensions and Layers are already negotiated.
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  PropertySet
	Layers      PropertySet
}

// QueueRequest asks for len(Priorities) queues from one family.
type QueueRequest struct {
	Family     uint32
	Priorities []float32
}

// DeviceCreateInfo is what the driver receives on logical device creation.
type DeviceCreateInfo struct {
	Queues     []QueueRequest
	Extensions PropertySet
	Features   FeatureFlags
}

// DebugCallback receives driver diagnostics. Its return value is reported
// back to the driver as "handled"; the core always returns false.
type DebugCallback func(msg DebugMessage) bool

// DebugInstaller installs and removes a debug callback on an instance. It
// is an optional driver capability, see Driver.DebugHook.
type DebugInstaller interface {
	Install(instance InstanceHandle, callback DebugCallback) (DebugHandle, error)
	Uninstall(instance InstanceHandle, hook DebugHandle)
}

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/perlw/soda/pompeii Driver,DebugInstaller,Window,Sink

// Driver is the graphics API as seen by the core.
//
// The Enumerate* methods follow the two-call protocol: called with a nil
// slice they store the available count, called with a slice they fill at
// most len(slice) entries and store how many were written. If the list no
// longer fits the slice they store the new available total instead, which
// makes the caller refill. Only the core's enumerate helper calls them.
type Driver interface {
	EnumerateInstanceExtensions(count *uint32, names []string) error
	EnumerateInstanceLayers(count *uint32, names []string) error

	CreateInstance(info InstanceCreateInfo) (InstanceHandle, error)
	DestroyInstance(instance InstanceHandle)

	// DebugHook probes for the debug callback installer. The second
	// return is false when the instance has no such entry point.
	DebugHook(instance InstanceHandle) (DebugInstaller, bool)

	DestroySurface(instance InstanceHandle, surface SurfaceHandle)

	EnumeratePhysicalDevices(instance InstanceHandle, count *uint32, devices []PhysicalDeviceHandle) error
	PhysicalDeviceProperties(device PhysicalDeviceHandle) DeviceProperties
	PhysicalDeviceFeatures(device PhysicalDeviceHandle) FeatureFlags
	EnumerateQueueFamilies(device PhysicalDeviceHandle, count *uint32, families []QueueFamilyProperties) error
	EnumerateDeviceExtensions(device PhysicalDeviceHandle, count *uint32, names []string) error
	SurfaceSupport(device PhysicalDeviceHandle, family uint32, surface SurfaceHandle) (bool, error)

	CreateDevice(physical PhysicalDeviceHandle, info DeviceCreateInfo) (DeviceHandle, error)
	DeviceQueue(device DeviceHandle, family, index uint32) QueueHandle
	DeviceWaitIdle(device DeviceHandle) error
	DestroyDevice(device DeviceHandle)
}
