package pompeii_test

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/perlw/soda/pompeii"
)

const (
	fakeInstance pompeii.InstanceHandle = 1
	fakeDebug    pompeii.DebugHandle    = 2
	fakeSurface  pompeii.SurfaceHandle  = 3
	fakeDevice   pompeii.DeviceHandle   = 4
)

type fakeFamily struct {
	flags      pompeii.QueueFlags
	count      uint32
	present    bool
	presentErr error
}

type fakeGPU struct {
	props      pompeii.DeviceProperties
	features   pompeii.FeatureFlags
	families   []fakeFamily
	extensions []string
}

// fakeDriver is an in-memory Driver. Every call that acquires, queries
// surface support or releases something is appended to calls.
type fakeDriver struct {
	extensions []string
	layers     []string
	gpus       []fakeGPU

	enumerateErr error
	createErr    error
	nullInstance bool
	noDebugHook  bool
	installErr   error
	deviceErr    error
	waitErr      error

	created    *pompeii.InstanceCreateInfo
	deviceInfo *pompeii.DeviceCreateInfo
	callback   pompeii.DebugCallback
	calls      []string
}

func fill[T any](src []T, count *uint32, out []T) {
	if out == nil {
		*count = uint32(len(src))
		return
	}
	*count = uint32(copy(out, src))
}

func gpuHandle(i int) pompeii.PhysicalDeviceHandle {
	return pompeii.PhysicalDeviceHandle(100 + i)
}

func (f *fakeDriver) gpu(h pompeii.PhysicalDeviceHandle) fakeGPU {
	return f.gpus[int(h)-100]
}

func (f *fakeDriver) record(format string, a ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, a...))
}

func (f *fakeDriver) EnumerateInstanceExtensions(count *uint32, names []string) error {
	if f.enumerateErr != nil {
		return f.enumerateErr
	}
	fill(f.extensions, count, names)
	return nil
}

func (f *fakeDriver) EnumerateInstanceLayers(count *uint32, names []string) error {
	fill(f.layers, count, names)
	return nil
}

func (f *fakeDriver) CreateInstance(info pompeii.InstanceCreateInfo) (pompeii.InstanceHandle, error) {
	f.record("CreateInstance")
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = &info
	if f.nullInstance {
		return 0, nil
	}
	return fakeInstance, nil
}

func (f *fakeDriver) DestroyInstance(instance pompeii.InstanceHandle) {
	f.record("DestroyInstance %d", instance)
}

func (f *fakeDriver) DebugHook(instance pompeii.InstanceHandle) (pompeii.DebugInstaller, bool) {
	if f.noDebugHook {
		return nil, false
	}
	return f, true
}

func (f *fakeDriver) Install(instance pompeii.InstanceHandle, callback pompeii.DebugCallback) (pompeii.DebugHandle, error) {
	if f.installErr != nil {
		return 0, f.installErr
	}
	f.record("Install")
	f.callback = callback
	return fakeDebug, nil
}

func (f *fakeDriver) Uninstall(instance pompeii.InstanceHandle, hook pompeii.DebugHandle) {
	f.record("Uninstall %d", hook)
}

func (f *fakeDriver) DestroySurface(instance pompeii.InstanceHandle, surface pompeii.SurfaceHandle) {
	f.record("DestroySurface %d", surface)
}

func (f *fakeDriver) EnumeratePhysicalDevices(instance pompeii.InstanceHandle, count *uint32, devices []pompeii.PhysicalDeviceHandle) error {
	if f.enumerateErr != nil {
		return f.enumerateErr
	}
	handles := make([]pompeii.PhysicalDeviceHandle, len(f.gpus))
	for i := range f.gpus {
		handles[i] = gpuHandle(i)
	}
	fill(handles, count, devices)
	return nil
}

func (f *fakeDriver) PhysicalDeviceProperties(device pompeii.PhysicalDeviceHandle) pompeii.DeviceProperties {
	return f.gpu(device).props
}

func (f *fakeDriver) PhysicalDeviceFeatures(device pompeii.PhysicalDeviceHandle) pompeii.FeatureFlags {
	return f.gpu(device).features
}

func (f *fakeDriver) EnumerateQueueFamilies(device pompeii.PhysicalDeviceHandle, count *uint32, families []pompeii.QueueFamilyProperties) error {
	src := make([]pompeii.QueueFamilyProperties, 0, len(f.gpu(device).families))
	for _, family := range f.gpu(device).families {
		src = append(src, pompeii.QueueFamilyProperties{Flags: family.flags, QueueCount: family.count})
	}
	fill(src, count, families)
	return nil
}

func (f *fakeDriver) EnumerateDeviceExtensions(device pompeii.PhysicalDeviceHandle, count *uint32, names []string) error {
	fill(f.gpu(device).extensions, count, names)
	return nil
}

func (f *fakeDriver) SurfaceSupport(device pompeii.PhysicalDeviceHandle, family uint32, surface pompeii.SurfaceHandle) (bool, error) {
	f.record("SurfaceSupport %d/%d", device, family)
	fam := f.gpu(device).families[family]
	if fam.presentErr != nil {
		return false, fam.presentErr
	}
	return fam.present, nil
}

func (f *fakeDriver) CreateDevice(physical pompeii.PhysicalDeviceHandle, info pompeii.DeviceCreateInfo) (pompeii.DeviceHandle, error) {
	f.record("CreateDevice %d", physical)
	if f.deviceErr != nil {
		return 0, f.deviceErr
	}
	f.deviceInfo = &info
	return fakeDevice, nil
}

func (f *fakeDriver) DeviceQueue(device pompeii.DeviceHandle, family, index uint32) pompeii.QueueHandle {
	return pompeii.QueueHandle(1000 + family*10 + index)
}

func (f *fakeDriver) DeviceWaitIdle(device pompeii.DeviceHandle) error {
	f.record("DeviceWaitIdle %d", device)
	return f.waitErr
}

func (f *fakeDriver) DestroyDevice(device pompeii.DeviceHandle) {
	f.record("DestroyDevice %d", device)
}

type fakeWindow struct {
	extensions pompeii.PropertySet
	surface    pompeii.SurfaceHandle
	err        error
}

func (w fakeWindow) RequiredExtensions() pompeii.PropertySet {
	return w.extensions
}

func (w fakeWindow) CreateSurface(instance pompeii.InstanceHandle) (pompeii.SurfaceHandle, error) {
	return w.surface, w.err
}

func newWindow() fakeWindow {
	return fakeWindow{
		extensions: pompeii.NewPropertySet("VK_KHR_surface", "VK_KHR_xcb_surface"),
		surface:    fakeSurface,
	}
}

var errDriver = errors.New("driver said no")

func family(flags pompeii.QueueFlags, present bool) fakeFamily {
	return fakeFamily{flags: flags, count: 1, present: present}
}

func gpuNamed(name string, families ...fakeFamily) fakeGPU {
	return fakeGPU{
		props: pompeii.DeviceProperties{
			Name: name,
			Type: pompeii.DeviceTypeIntegrated,
			Limits: pompeii.DeviceLimits{
				MaxViewportDimensions: [2]uint32{4096, 4096},
			},
		},
		families:   families,
		extensions: []string{"VK_KHR_swapchain"},
	}
}
