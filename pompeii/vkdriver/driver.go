// Package vkdriver implements pompeii.Driver on top of the Vulkan loader.
package vkdriver

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/soda/logger"
	"github.com/perlw/soda/pompeii"
)

// DebugReportExtension is the instance extension the debug hook needs.
const DebugReportExtension = "VK_EXT_debug_report"

// SwapchainExtension is the device extension presentation needs.
const SwapchainExtension = "VK_KHR_swapchain"

type Driver struct {
	log logger.Logger

	instances *table[vk.Instance]
	physical  *table[vk.PhysicalDevice]
	devices   *table[vk.Device]
	queues    *table[vk.Queue]
	surfaces  *table[vk.Surface]
	callbacks *table[vk.DebugReportCallback]

	debugReport map[pompeii.InstanceHandle]bool
}

var _ pompeii.Driver = (*Driver)(nil)

// New loads the Vulkan entry points. The bindings resolve them through
// GLFW, so glfw.Init must have succeeded first.
func New(log logger.Logger) (*Driver, error) {
	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "could not initialize vulkan")
	}

	return &Driver{
		log:         log,
		instances:   newTable[vk.Instance](),
		physical:    newTable[vk.PhysicalDevice](),
		devices:     newTable[vk.Device](),
		queues:      newTable[vk.Queue](),
		surfaces:    newTable[vk.Surface](),
		callbacks:   newTable[vk.DebugReportCallback](),
		debugReport: map[pompeii.InstanceHandle]bool{},
	}, nil
}

func (d *Driver) EnumerateInstanceExtensions(count *uint32, names []string) error {
	if names == nil {
		return vk.Error(vk.EnumerateInstanceExtensionProperties("", count, nil))
	}

	n := uint32(len(names))
	props := make([]vk.ExtensionProperties, n)
	result := vk.EnumerateInstanceExtensionProperties("", &n, props)
	for t := uint32(0); t < n; t++ {
		props[t].Deref()
		names[t] = vk.ToString(props[t].ExtensionName[:])
	}
	err := written(result, n, count, func(total *uint32) vk.Result {
		return vk.EnumerateInstanceExtensionProperties("", total, nil)
	})
	return errors.Wrap(err, "could not get instance extensions")
}

func (d *Driver) EnumerateInstanceLayers(count *uint32, names []string) error {
	if names == nil {
		return vk.Error(vk.EnumerateInstanceLayerProperties(count, nil))
	}

	n := uint32(len(names))
	props := make([]vk.LayerProperties, n)
	result := vk.EnumerateInstanceLayerProperties(&n, props)
	for t := uint32(0); t < n; t++ {
		props[t].Deref()
		names[t] = vk.ToString(props[t].LayerName[:])
	}
	err := written(result, n, count, func(total *uint32) vk.Result {
		return vk.EnumerateInstanceLayerProperties(total, nil)
	})
	return errors.Wrap(err, "could not get instance layers")
}

func (d *Driver) CreateInstance(info pompeii.InstanceCreateInfo) (pompeii.InstanceHandle, error) {
	layers := vkStrings(info.Layers.Names())
	extensions := vkStrings(info.Extensions.Names())

	instanceInfo := vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   vkString(info.Application.Name),
			ApplicationVersion: info.Application.Version.Packed(),
			PEngineName:        vkString(info.Application.EngineName),
			EngineVersion:      info.Application.EngineVersion.Packed(),
			ApiVersion:         info.Application.APIVersion.Packed(),
		},
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}

	var instance vk.Instance
	if result := vk.CreateInstance(&instanceInfo, nil, &instance); result != vk.Success {
		return 0, errors.Wrap(vk.Error(result), "could not create instance")
	}
	vk.InitInstance(instance)

	h := pompeii.InstanceHandle(d.instances.put(instance))
	d.debugReport[h] = info.Extensions.Contains(DebugReportExtension)
	d.log.Trace("vkCreateInstance -> %d", h)
	return h, nil
}

func (d *Driver) DestroyInstance(h pompeii.InstanceHandle) {
	instance, ok := d.instances.get(uint64(h))
	if !ok {
		return
	}
	vk.DestroyInstance(instance, nil)
	d.instances.drop(uint64(h))
	d.physical.release(uint64(h))
	delete(d.debugReport, h)
	d.log.Trace("vkDestroyInstance %d", h)
}

// NativeInstance exposes the Vulkan instance behind h to windowing
// libraries that create surfaces themselves.
func (d *Driver) NativeInstance(h pompeii.InstanceHandle) (vk.Instance, bool) {
	return d.instances.get(uint64(h))
}

// AdoptSurface takes ownership of a surface created outside the driver.
func (d *Driver) AdoptSurface(surface vk.Surface) pompeii.SurfaceHandle {
	if surface == vk.NullSurface {
		return 0
	}
	return pompeii.SurfaceHandle(d.surfaces.put(surface))
}

func (d *Driver) DestroySurface(instance pompeii.InstanceHandle, h pompeii.SurfaceHandle) {
	inst, ok := d.instances.get(uint64(instance))
	if !ok {
		return
	}
	surface, ok := d.surfaces.get(uint64(h))
	if !ok {
		return
	}
	vk.DestroySurface(inst, surface, nil)
	d.surfaces.drop(uint64(h))
	d.log.Trace("vkDestroySurfaceKHR %d", h)
}

func (d *Driver) EnumeratePhysicalDevices(h pompeii.InstanceHandle, count *uint32, devices []pompeii.PhysicalDeviceHandle) error {
	instance, ok := d.instances.get(uint64(h))
	if !ok {
		return errors.Errorf("unknown instance %d", h)
	}
	if devices == nil {
		return vk.Error(vk.EnumeratePhysicalDevices(instance, count, nil))
	}

	n := uint32(len(devices))
	gpus := make([]vk.PhysicalDevice, n)
	result := vk.EnumeratePhysicalDevices(instance, &n, gpus)
	if result == vk.Success || result == vk.Incomplete {
		for t := uint32(0); t < n; t++ {
			devices[t] = pompeii.PhysicalDeviceHandle(d.physical.adopt(uint64(h), gpus[t]))
		}
	}
	err := written(result, n, count, func(total *uint32) vk.Result {
		return vk.EnumeratePhysicalDevices(instance, total, nil)
	})
	return errors.Wrap(err, "could not enumerate gpus")
}

func (d *Driver) PhysicalDeviceProperties(h pompeii.PhysicalDeviceHandle) pompeii.DeviceProperties {
	gpu, ok := d.physical.get(uint64(h))
	if !ok {
		return pompeii.DeviceProperties{}
	}

	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(gpu, &props)
	props.Deref()
	props.Limits.Deref()

	var memProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(gpu, &memProps)
	memProps.Deref()
	var memory uint64
	for t := uint32(0); t < memProps.MemoryHeapCount; t++ {
		memProps.MemoryHeaps[t].Deref()
		memory += uint64(memProps.MemoryHeaps[t].Size)
	}

	return pompeii.DeviceProperties{
		Name:          vk.ToString(props.DeviceName[:]),
		Type:          deviceType(props.DeviceType),
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		APIVersion:    pompeii.UnpackVersion(props.ApiVersion),
		DriverVersion: pompeii.UnpackVersion(props.DriverVersion),
		Limits: pompeii.DeviceLimits{
			MaxImageDimension2D:   props.Limits.MaxImageDimension2D,
			MaxViewports:          props.Limits.MaxViewports,
			MaxViewportDimensions: props.Limits.MaxViewportDimensions,
		},
		MemorySize: memory,
	}
}

func deviceType(t vk.PhysicalDeviceType) pompeii.DeviceType {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return pompeii.DeviceTypeIntegrated
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return pompeii.DeviceTypeDiscrete
	case vk.PhysicalDeviceTypeVirtualGpu:
		return pompeii.DeviceTypeVirtual
	case vk.PhysicalDeviceTypeCpu:
		return pompeii.DeviceTypeCPU
	default:
		return pompeii.DeviceTypeOther
	}
}

func (d *Driver) PhysicalDeviceFeatures(h pompeii.PhysicalDeviceHandle) pompeii.FeatureFlags {
	gpu, ok := d.physical.get(uint64(h))
	if !ok {
		return 0
	}

	var features vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(gpu, &features)
	features.Deref()

	var flags pompeii.FeatureFlags
	for _, f := range []struct {
		on   vk.Bool32
		flag pompeii.FeatureFlags
	}{
		{features.GeometryShader, pompeii.FeatureGeometryShader},
		{features.TessellationShader, pompeii.FeatureTessellationShader},
		{features.SamplerAnisotropy, pompeii.FeatureSamplerAnisotropy},
		{features.MultiViewport, pompeii.FeatureMultiViewport},
		{features.WideLines, pompeii.FeatureWideLines},
		{features.FillModeNonSolid, pompeii.FeatureFillModeNonSolid},
		{features.ShaderFloat64, pompeii.FeatureShaderFloat64},
		{features.TextureCompressionBC, pompeii.FeatureTextureCompressionBC},
	} {
		if f.on != 0 {
			flags |= f.flag
		}
	}
	return flags
}

func enabledFeatures(flags pompeii.FeatureFlags) vk.PhysicalDeviceFeatures {
	on := func(flag pompeii.FeatureFlags) vk.Bool32 {
		if flags&flag != 0 {
			return vk.Bool32(vk.True)
		}
		return vk.Bool32(vk.False)
	}
	return vk.PhysicalDeviceFeatures{
		GeometryShader:       on(pompeii.FeatureGeometryShader),
		TessellationShader:   on(pompeii.FeatureTessellationShader),
		SamplerAnisotropy:    on(pompeii.FeatureSamplerAnisotropy),
		MultiViewport:        on(pompeii.FeatureMultiViewport),
		WideLines:            on(pompeii.FeatureWideLines),
		FillModeNonSolid:     on(pompeii.FeatureFillModeNonSolid),
		ShaderFloat64:        on(pompeii.FeatureShaderFloat64),
		TextureCompressionBC: on(pompeii.FeatureTextureCompressionBC),
	}
}

func (d *Driver) EnumerateQueueFamilies(h pompeii.PhysicalDeviceHandle, count *uint32, families []pompeii.QueueFamilyProperties) error {
	gpu, ok := d.physical.get(uint64(h))
	if !ok {
		return errors.Errorf("unknown physical device %d", h)
	}
	if families == nil {
		vk.GetPhysicalDeviceQueueFamilyProperties(gpu, count, nil)
		return nil
	}

	n := uint32(len(families))
	props := make([]vk.QueueFamilyProperties, n)
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &n, props)
	for t := uint32(0); t < n; t++ {
		props[t].Deref()
		families[t] = pompeii.QueueFamilyProperties{
			Flags:      queueFlags(props[t].QueueFlags),
			QueueCount: props[t].QueueCount,
		}
	}
	*count = n
	return nil
}

func queueFlags(flags vk.QueueFlags) pompeii.QueueFlags {
	var out pompeii.QueueFlags
	if flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
		out |= pompeii.QueueGraphics
	}
	if flags&vk.QueueFlags(vk.QueueComputeBit) != 0 {
		out |= pompeii.QueueCompute
	}
	if flags&vk.QueueFlags(vk.QueueTransferBit) != 0 {
		out |= pompeii.QueueTransfer
	}
	if flags&vk.QueueFlags(vk.QueueSparseBindingBit) != 0 {
		out |= pompeii.QueueSparseBinding
	}
	return out
}

func (d *Driver) EnumerateDeviceExtensions(h pompeii.PhysicalDeviceHandle, count *uint32, names []string) error {
	gpu, ok := d.physical.get(uint64(h))
	if !ok {
		return errors.Errorf("unknown physical device %d", h)
	}
	if names == nil {
		return vk.Error(vk.EnumerateDeviceExtensionProperties(gpu, "", count, nil))
	}

	n := uint32(len(names))
	props := make([]vk.ExtensionProperties, n)
	result := vk.EnumerateDeviceExtensionProperties(gpu, "", &n, props)
	for t := uint32(0); t < n; t++ {
		props[t].Deref()
		names[t] = vk.ToString(props[t].ExtensionName[:])
	}
	err := written(result, n, count, func(total *uint32) vk.Result {
		return vk.EnumerateDeviceExtensionProperties(gpu, "", total, nil)
	})
	return errors.Wrap(err, "could not get device extensions")
}

func (d *Driver) SurfaceSupport(h pompeii.PhysicalDeviceHandle, family uint32, s pompeii.SurfaceHandle) (bool, error) {
	gpu, ok := d.physical.get(uint64(h))
	if !ok {
		return false, errors.Errorf("unknown physical device %d", h)
	}
	surface, ok := d.surfaces.get(uint64(s))
	if !ok {
		return false, errors.Errorf("unknown surface %d", s)
	}

	var presentSupport vk.Bool32
	if result := vk.GetPhysicalDeviceSurfaceSupport(gpu, family, surface, &presentSupport); result != vk.Success {
		return false, errors.Wrap(vk.Error(result), "query surface support")
	}
	return presentSupport > 0, nil
}

func (d *Driver) CreateDevice(h pompeii.PhysicalDeviceHandle, info pompeii.DeviceCreateInfo) (pompeii.DeviceHandle, error) {
	gpu, ok := d.physical.get(uint64(h))
	if !ok {
		return 0, errors.Errorf("unknown physical device %d", h)
	}

	queueInfos := make([]vk.DeviceQueueCreateInfo, len(info.Queues))
	for t, q := range info.Queues {
		queueInfos[t] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.Family,
			QueueCount:       uint32(len(q.Priorities)),
			PQueuePriorities: q.Priorities,
		}
	}
	extensions := vkStrings(info.Extensions.Names())

	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledLayerCount:       0,
		PpEnabledLayerNames:     nil,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{enabledFeatures(info.Features)},
	}

	var device vk.Device
	if result := vk.CreateDevice(gpu, &deviceCreateInfo, nil, &device); result != vk.Success {
		return 0, errors.Wrap(vk.Error(result), "create device")
	}

	handle := pompeii.DeviceHandle(d.devices.put(device))
	d.log.Trace("vkCreateDevice -> %d", handle)
	return handle, nil
}

func (d *Driver) DeviceQueue(h pompeii.DeviceHandle, family, index uint32) pompeii.QueueHandle {
	device, ok := d.devices.get(uint64(h))
	if !ok {
		return 0
	}
	var queue vk.Queue
	vk.GetDeviceQueue(device, family, index, &queue)
	return pompeii.QueueHandle(d.queues.adopt(uint64(h), queue))
}

// NativeDevice exposes the Vulkan device behind h.
func (d *Driver) NativeDevice(h pompeii.DeviceHandle) (vk.Device, bool) {
	return d.devices.get(uint64(h))
}

func (d *Driver) DeviceWaitIdle(h pompeii.DeviceHandle) error {
	device, ok := d.devices.get(uint64(h))
	if !ok {
		return errors.Errorf("unknown device %d", h)
	}
	return vk.Error(vk.DeviceWaitIdle(device))
}

func (d *Driver) DestroyDevice(h pompeii.DeviceHandle) {
	device, ok := d.devices.get(uint64(h))
	if !ok {
		return
	}
	vk.DestroyDevice(device, nil)
	d.devices.drop(uint64(h))
	d.queues.release(uint64(h))
	d.log.Trace("vkDestroyDevice %d", h)
}

// written finishes a fill call that wrote n entries. Incomplete means the
// list grew after the count call, so the new total is stored instead and
// the caller refills.
func written(result vk.Result, n uint32, count *uint32, recount func(total *uint32) vk.Result) error {
	switch result {
	case vk.Success:
		*count = n
		return nil
	case vk.Incomplete:
		if err := vk.Error(recount(count)); err != nil {
			return err
		}
		if *count <= n {
			*count = n
		}
		return nil
	default:
		return vk.Error(result)
	}
}
